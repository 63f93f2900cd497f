package api

import (
	"github.com/sarchlab/akita/v4/sim"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine     sim.Engine
	freq       sim.Freq
	bufferSize int
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithBufferSize sets the number of msgs the device port can queue in each
// direction.
func (b DriverBuilder) WithBufferSize(n int) DriverBuilder {
	b.bufferSize = n
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.bufferSize < 1 {
		b.bufferSize = 4
	}

	d := &driverImpl{}
	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)
	d.port = sim.NewPort(d, b.bufferSize, b.bufferSize, name+".Device")
	d.AddPort("Device", d.port)

	return d
}
