package systolic

import "fmt"

// Select returns the accumulator of the given lane. It never modifies the
// array.
func Select(a *Array, lane int) int16 {
	laneMustBeValid(lane)
	return a[lane].Acc
}

// SplitResult breaks a signed 16-bit result into its low and high bytes.
func SplitResult(v int16) (low, high uint8) {
	u := uint16(v)
	return uint8(u), uint8(u >> 8)
}

// JoinResult reassembles a signed 16-bit result from its two bytes.
func JoinResult(low, high uint8) int16 {
	return int16(uint16(high)<<8 | uint16(low))
}

func laneMustBeValid(lane int) {
	if lane < 0 || lane >= NumLanes {
		panic(fmt.Sprintf("lane %d out of range [0, %d)", lane, NumLanes))
	}
}
