package systolic

// Job is one load-compute-drain pass over the array.
type Job struct {
	Weights     [NumLanes]int8
	Biases      [NumLanes]int8
	Activations [ComputeCycles]int8
}

// Stimulus returns the byte presented on the input bus in each of the
// JobCycles cycles of the job. Drain cycles carry zero.
func (j Job) Stimulus() []uint8 {
	bytes := make([]uint8, 0, JobCycles)

	for _, w := range j.Weights {
		bytes = append(bytes, uint8(w))
	}

	for _, b := range j.Biases {
		bytes = append(bytes, uint8(b))
	}

	for _, a := range j.Activations {
		bytes = append(bytes, uint8(a))
	}

	for i := 0; i < DrainCycles; i++ {
		bytes = append(bytes, 0)
	}

	return bytes
}

// PhaseAt returns the controller state that consumes the n-th byte of the
// stimulus.
func PhaseAt(n int) State {
	switch {
	case n < 0 || n >= JobCycles:
		panic("cycle out of job")
	case n < LoadCycles:
		return LoadWeight
	case n < 2*LoadCycles:
		return LoadBias
	case n < 2*LoadCycles+ComputeCycles:
		return Compute
	default:
		return Drain
	}
}
