package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/systolic"
)

// Builder can create new cores.
type Builder struct {
	engine     sim.Engine
	freq       sim.Freq
	bufferSize int
}

// MakeBuilder returns a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq:       50 * sim.MHz,
		bufferSize: 4,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithBufferSize sets the number of msgs the bus port can queue in each
// direction.
func (b Builder) WithBufferSize(n int) Builder {
	if n < 1 {
		panic("bus buffer needs at least one slot")
	}

	b.bufferSize = n
	return b
}

// Build creates a core whose controller starts in the reset state.
func (b Builder) Build(name string) *Core {
	c := &Core{
		ctrl: systolic.NewController(),
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.bus = sim.NewPort(c, b.bufferSize, b.bufferSize, name+".Bus")
	c.AddPort("Bus", c.bus)

	return c
}
