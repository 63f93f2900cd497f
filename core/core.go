// Package core provides the accelerator component that clocks the MAC array
// controller inside an Akita simulation.
package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/systolic"
)

// Core is the simulated chip. Every PinMsg that arrives on the bus port is
// one rising clock edge.
type Core struct {
	*sim.TickingComponent

	bus  sim.Port
	ctrl *systolic.Controller
}

// GetBusPort returns the port that accepts pin samples.
func (c *Core) GetBusPort() sim.Port {
	return c.bus
}

// Snapshot returns a copy of the controller registers.
func (c *Core) Snapshot() systolic.Snapshot {
	return c.ctrl.Snapshot()
}

// Tick clocks the controller at most once.
func (c *Core) Tick() (madeProgress bool) {
	return c.clock()
}

func (c *Core) clock() bool {
	item := c.bus.PeekIncoming()
	if item == nil {
		return false
	}

	msg, ok := item.(*systolic.PinMsg)
	if !ok {
		panic(fmt.Sprintf("core %s cannot handle msg of type %T", c.Name(), item))
	}

	// The edge only happens if the sampled outputs can be reported.
	if !c.bus.CanSend() {
		return false
	}

	cycle := c.ctrl.Cycle()
	state := c.ctrl.State()
	out := c.ctrl.Output()

	rsp := systolic.ResultMsgBuilder{}.
		WithSrc(c.bus.AsRemote()).
		WithDst(msg.Src).
		WithRespondTo(msg.ID).
		WithCycle(cycle).
		WithState(state).
		WithOutputs(out).
		Build()

	if err := c.bus.Send(rsp); err != nil {
		Trace("Backpressure",
			"Type", "ResultSendFailed",
			"Core", c.Name(),
			"Cycle", cycle,
		)
		return false
	}

	c.ctrl.Step(msg.Pins.Inputs())
	c.bus.RetrieveIncoming()

	record := CycleRecord{
		Cycle:   cycle,
		Time:    c.Engine.CurrentTime(),
		State:   state,
		Next:    c.ctrl.State(),
		Pins:    msg.Pins,
		Outputs: out,
		PEs:     c.ctrl.Snapshot().PEs,
	}
	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosCycle,
		Item:   record,
	})

	c.traceCycle(record)

	return true
}

func (c *Core) traceCycle(r CycleRecord) {
	Trace("Cycle",
		"Core", c.Name(),
		"Cycle", r.Cycle,
		"State", r.State.String(),
		"UIIn", r.Pins.UIIn,
		"RstN", r.Pins.RstN,
		"Ena", r.Pins.Ena,
	)

	if r.State != r.Next {
		Trace("Transition",
			"Core", c.Name(),
			"Cycle", r.Cycle,
			"From", r.State.String(),
			"To", r.Next.String(),
		)
	}

	if r.Outputs.Valid {
		Trace("Drain",
			"Core", c.Name(),
			"Cycle", r.Cycle,
			"Lane", r.Outputs.Lane,
			"Result", r.Outputs.Result(),
		)
	}
}
