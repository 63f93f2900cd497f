package systolic

// Inputs are the logical control and data signals sampled at a clock edge.
type Inputs struct {
	RstN bool
	Ena  bool
	Data uint8

	// Aux is the reserved secondary input bus. The controller ignores it.
	Aux uint8
}

// Outputs are the logical signals the controller drives during a cycle.
type Outputs struct {
	// Valid is true only while draining.
	Valid bool
	Lane  int
	Low   uint8
	High  uint8
}

// Result returns the 16-bit value carried by the two output bytes.
func (o Outputs) Result() int16 {
	return JoinResult(o.Low, o.High)
}

// Snapshot is a copy of every register of the controller.
type Snapshot struct {
	State   State
	PEIndex int
	Phase   int
	Cycle   uint64
	PEs     Array
}

// Controller sequences the array through load, compute and drain. It is a
// plain register model: Step computes every update from the values held
// before the edge and commits them together.
type Controller struct {
	state   State
	peIndex int
	phase   int
	cycle   uint64
	pes     Array
}

// NewController returns a controller in the reset state.
func NewController() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Cycle returns the number of clock edges seen so far, including reset and
// hold cycles.
func (c *Controller) Cycle() uint64 {
	return c.cycle
}

// PE returns a copy of the registers of a lane.
func (c *Controller) PE(lane int) PE {
	laneMustBeValid(lane)
	return c.pes[lane]
}

// Snapshot returns a copy of the full register state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:   c.state,
		PEIndex: c.peIndex,
		Phase:   c.phase,
		Cycle:   c.cycle,
		PEs:     c.pes,
	}
}

// Output returns what the output pins show during the current cycle. Only the
// drain phase drives a result; every other phase drives zero.
func (c *Controller) Output() Outputs {
	if c.state != Drain {
		return Outputs{}
	}

	low, high := SplitResult(Select(&c.pes, c.peIndex))

	return Outputs{
		Valid: true,
		Lane:  c.peIndex,
		Low:   low,
		High:  high,
	}
}

// Step applies one rising clock edge. Reset wins over enable.
func (c *Controller) Step(in Inputs) {
	c.cycle++

	if !in.RstN {
		c.reset()
		return
	}

	if !in.Ena {
		return
	}

	data := int8(in.Data)

	switch RouteFor(c.state) {
	case ToWeight:
		c.pes[c.peIndex].LoadWeight(data)
		c.advanceLane(LoadBias)
	case ToBias:
		c.pes[c.peIndex].LoadBias(data)
		c.advanceLane(Compute)
	case ToChain:
		c.computeBeat(data)
	default:
		c.controlBeat()
	}
}

// controlBeat advances the states that ignore the input bus.
func (c *Controller) controlBeat() {
	switch c.state {
	case Idle:
		c.enter(LoadWeight)
	case Drain:
		c.advanceLane(LoadWeight)
	default:
		panic("invalid state")
	}
}

// RunJob drives one complete job through a controller that is about to enter
// (or is in the first cycle of) LOAD_W and returns the drained results.
func (c *Controller) RunJob(j Job) [NumLanes]int16 {
	if c.state == Idle {
		c.Step(Inputs{RstN: true, Ena: true})
	}

	if c.state != LoadWeight || c.peIndex != 0 {
		panic("controller is not at the start of a job")
	}

	var results [NumLanes]int16
	for _, b := range j.Stimulus() {
		if out := c.Output(); out.Valid {
			results[out.Lane] = out.Result()
		}
		c.Step(Inputs{RstN: true, Ena: true, Data: b})
	}

	return results
}

func (c *Controller) reset() {
	c.state = Idle
	c.peIndex = 0
	c.phase = 0
	c.pes.Reset()
}

func (c *Controller) computeBeat(data int8) {
	c.pes.Shift(data)

	for i := range c.pes {
		if c.phase >= i {
			c.pes[i].Accumulate()
		}
	}

	c.phase++
	if c.phase == ComputeCycles {
		c.enter(Drain)
	}
}

func (c *Controller) advanceLane(next State) {
	c.peIndex++
	if c.peIndex == NumLanes {
		c.enter(next)
	}
}

func (c *Controller) enter(s State) {
	c.state = s
	c.peIndex = 0
	c.phase = 0

	if s == Compute {
		c.pes.ClearChain()
	}
}
