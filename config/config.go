// Package config provides a default configuration for the MAC array
// accelerator.
package config

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/core"
)

// DeviceBuilder can build accelerator devices.
type DeviceBuilder struct {
	engine     sim.Engine
	freq       sim.Freq
	bufferSize int
	monitor    *monitoring.Monitor
}

// WithEngine sets the engine that drives the device simulation.
func (d DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	d.engine = engine
	return d
}

// WithFreq sets the frequency of the device.
func (d DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	d.freq = freq
	return d
}

// WithBufferSize sets the size of the bus port buffers.
func (d DeviceBuilder) WithBufferSize(n int) DeviceBuilder {
	d.bufferSize = n
	return d
}

// WithMonitor sets the monitor that monitors the device.
func (d DeviceBuilder) WithMonitor(monitor *monitoring.Monitor) DeviceBuilder {
	d.monitor = monitor
	return d
}

// Build creates an accelerator device.
func (d DeviceBuilder) Build(name string) *core.Core {
	b := core.MakeBuilder().WithEngine(d.engine)

	if d.freq > 0 {
		b = b.WithFreq(d.freq)
	}

	if d.bufferSize > 0 {
		b = b.WithBufferSize(d.bufferSize)
	}

	dev := b.Build(name)

	if d.monitor != nil {
		d.monitor.RegisterComponent(dev)
	}

	return dev
}
