// Package systolic defines the commonly used data structures of the 4-lane
// weight-stationary MAC array and a cycle-accurate model of its controller.
package systolic

import "fmt"

// Array geometry and phase lengths. None of them can change at run time.
const (
	NumLanes      = 4
	LoadCycles    = NumLanes
	ComputeCycles = 7
	DrainCycles   = NumLanes

	// JobCycles is the number of bus cycles one job occupies, from the first
	// weight byte to the last drained lane.
	JobCycles = 2*LoadCycles + ComputeCycles + DrainCycles
)

// State is the phase of the controller.
type State int

const (
	Idle State = iota
	LoadWeight
	LoadBias
	Compute
	Drain
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case LoadWeight:
		return "LOAD_W"
	case LoadBias:
		return "LOAD_B"
	case Compute:
		return "COMPUTE"
	case Drain:
		return "DRAIN"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Length returns how many enabled cycles the controller stays in the state
// before it moves on.
func (s State) Length() int {
	switch s {
	case Idle:
		return 1
	case LoadWeight, LoadBias:
		return LoadCycles
	case Compute:
		return ComputeCycles
	case Drain:
		return DrainCycles
	default:
		panic("invalid state")
	}
}

// Next returns the state that follows s once s has run for Length cycles.
func (s State) Next() State {
	switch s {
	case Idle:
		return LoadWeight
	case LoadWeight:
		return LoadBias
	case LoadBias:
		return Compute
	case Compute:
		return Drain
	case Drain:
		return LoadWeight
	default:
		panic("invalid state")
	}
}

// Destination is the consumer of the shared input byte in a cycle.
type Destination int

const (
	ToNothing Destination = iota
	ToWeight
	ToBias
	ToChain
)

// String returns the name of the destination.
func (d Destination) String() string {
	switch d {
	case ToNothing:
		return "none"
	case ToWeight:
		return "weight"
	case ToBias:
		return "bias"
	case ToChain:
		return "chain"
	default:
		return fmt.Sprintf("Destination(%d)", int(d))
	}
}

// RouteFor returns where the input bus is routed while the controller is in
// the given state. The routing never depends on the value on the bus.
func RouteFor(s State) Destination {
	switch s {
	case LoadWeight:
		return ToWeight
	case LoadBias:
		return ToBias
	case Compute:
		return ToChain
	default:
		return ToNothing
	}
}
