// Some helpers using closures to generate job operands
package valgen

import "github.com/sarchlab/sysmac/systolic"

// Gen produces one operand per call.
type Gen func() int8

func MakeConstGen(constant int8) Gen {
	return func() int8 {
		return constant
	}
}

// MakeRampGen starts at start and adds step on every call. The value wraps
// like a bus byte.
func MakeRampGen(start, step int8) Gen {
	current := start - step
	return func() int8 {
		current += step
		return current
	}
}

// MakeCycleGen repeats the given values in order.
func MakeCycleGen(values ...int8) Gen {
	i := -1
	return func() int8 {
		i = (i + 1) % len(values)
		return values[i]
	}
}

// MakeJob fills a job from three generators.
func MakeJob(weights, biases, activations Gen) systolic.Job {
	var j systolic.Job

	for i := range j.Weights {
		j.Weights[i] = weights()
	}

	for i := range j.Biases {
		j.Biases[i] = biases()
	}

	for i := range j.Activations {
		j.Activations[i] = activations()
	}

	return j
}
