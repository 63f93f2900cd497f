package verify

import (
	"github.com/sarchlab/sysmac/systolic"
)

// LaneTerms returns how many products a lane accumulates during one job.
func LaneTerms(lane int) int {
	if lane < 0 || lane >= systolic.NumLanes {
		panic("invalid lane")
	}

	return systolic.ComputeCycles - lane
}

// Expected returns the results the accelerator should drain for a job.
func Expected(j systolic.Job) [systolic.NumLanes]int16 {
	var out [systolic.NumLanes]int16

	for lane := range out {
		sums := RunningSums(j, lane)
		out[lane] = int16(sums[len(sums)-1])
	}

	return out
}

// RunningSums returns the unwrapped accumulator value of a lane after the
// bias is loaded and after each accumulated term.
func RunningSums(j systolic.Job, lane int) []int32 {
	terms := LaneTerms(lane)
	w := int32(j.Weights[lane])

	sums := make([]int32, 0, terms+1)
	acc := int32(j.Biases[lane])
	sums = append(sums, acc)

	for k := 0; k < terms; k++ {
		acc += w * int32(j.Activations[k])
		sums = append(sums, acc)
	}

	return sums
}
