package systolic

import (
	"github.com/sarchlab/akita/v4/sim"
)

// PinMsg carries the input pin values of one clock edge from a driver to the
// accelerator.
type PinMsg struct {
	sim.MsgMeta

	Pins Pins
}

// Meta returns the meta data of the msg.
func (m *PinMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *PinMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()

	return &clone
}

// PinMsgBuilder is a factory for PinMsg.
type PinMsgBuilder struct {
	src, dst sim.RemotePort
	pins     Pins
}

// WithSrc sets the source port of the msg.
func (b PinMsgBuilder) WithSrc(src sim.RemotePort) PinMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b PinMsgBuilder) WithDst(dst sim.RemotePort) PinMsgBuilder {
	b.dst = dst
	return b
}

// WithPins sets the pin sample of the msg.
func (b PinMsgBuilder) WithPins(pins Pins) PinMsgBuilder {
	b.pins = pins
	return b
}

// Build creates a PinMsg.
func (b PinMsgBuilder) Build() *PinMsg {
	return &PinMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Pins: b.pins,
	}
}

// ResultMsg reports what the output pins showed during the cycle a PinMsg
// clocked, together with the controller state of that cycle.
type ResultMsg struct {
	sim.MsgMeta

	RespondTo string
	Cycle     uint64
	State     State
	Outputs   Outputs
	Pins      PinOutputs
}

// Meta returns the meta data of the msg.
func (m *ResultMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *ResultMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()

	return &clone
}

// ResultMsgBuilder is a factory for ResultMsg.
type ResultMsgBuilder struct {
	src, dst  sim.RemotePort
	respondTo string
	cycle     uint64
	state     State
	outputs   Outputs
}

// WithSrc sets the source port of the msg.
func (b ResultMsgBuilder) WithSrc(src sim.RemotePort) ResultMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResultMsgBuilder) WithDst(dst sim.RemotePort) ResultMsgBuilder {
	b.dst = dst
	return b
}

// WithRespondTo sets the ID of the PinMsg this msg answers.
func (b ResultMsgBuilder) WithRespondTo(id string) ResultMsgBuilder {
	b.respondTo = id
	return b
}

// WithCycle sets the cycle number of the sample.
func (b ResultMsgBuilder) WithCycle(cycle uint64) ResultMsgBuilder {
	b.cycle = cycle
	return b
}

// WithState sets the controller state of the sampled cycle.
func (b ResultMsgBuilder) WithState(state State) ResultMsgBuilder {
	b.state = state
	return b
}

// WithOutputs sets the sampled outputs.
func (b ResultMsgBuilder) WithOutputs(outputs Outputs) ResultMsgBuilder {
	b.outputs = outputs
	return b
}

// Build creates a ResultMsg. The pin view is derived from the outputs.
func (b ResultMsgBuilder) Build() *ResultMsg {
	return &ResultMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		RespondTo: b.respondTo,
		Cycle:     b.cycle,
		State:     b.state,
		Outputs:   b.outputs,
		Pins:      Frame(b.outputs),
	}
}
