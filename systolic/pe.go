package systolic

// PE is the register file of one MAC lane.
type PE struct {
	Weight int8
	Bias   int8
	Acc    int16

	// Delay is the staging register of the activation chain. It holds the
	// activation the lane consumes in the current compute beat.
	Delay int8
}

// LoadWeight latches a weight.
func (p *PE) LoadWeight(v int8) {
	p.Weight = v
}

// LoadBias latches a bias and seeds the accumulator with it.
func (p *PE) LoadBias(v int8) {
	p.Bias = v
	p.Acc = int16(v)
}

// Product returns the 8x8->16 signed product of the staged activation and the
// weight. A single product always fits in 16 bits.
func (p *PE) Product() int16 {
	return int16(p.Delay) * int16(p.Weight)
}

// Accumulate adds the current product to the accumulator. The sum wraps in
// two's complement.
func (p *PE) Accumulate() {
	p.Acc += p.Product()
}

// Array holds the lanes of the accelerator, indexed by lane number.
type Array [NumLanes]PE

// Shift advances the activation chain by one beat. Lane 0 takes in; every
// other lane takes what its left neighbour held in the previous cycle.
func (a *Array) Shift(in int8) {
	for i := NumLanes - 1; i > 0; i-- {
		a[i].Delay = a[i-1].Delay
	}
	a[0].Delay = in
}

// ClearChain zeroes every staging register.
func (a *Array) ClearChain() {
	for i := range a {
		a[i].Delay = 0
	}
}

// Reset zeroes every register of every lane.
func (a *Array) Reset() {
	*a = Array{}
}

// Accumulators returns a copy of the accumulator of every lane.
func (a Array) Accumulators() [NumLanes]int16 {
	var out [NumLanes]int16
	for i := range a {
		out[i] = a[i].Acc
	}
	return out
}
