package config

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/api"
	"github.com/sarchlab/sysmac/core"
	"github.com/sarchlab/sysmac/job"
)

// Platform is a driver connected to one accelerator.
type Platform struct {
	Engine sim.Engine
	Accel  *core.Core
	Driver api.Driver
}

// PlatformBuilder assembles a Platform from run settings.
type PlatformBuilder struct {
	settings job.Settings
	monitor  *monitoring.Monitor
}

// MakePlatformBuilder returns a builder with the default settings.
func MakePlatformBuilder() PlatformBuilder {
	return PlatformBuilder{settings: job.DefaultSettings()}
}

// WithSettings sets the clock frequency and buffer sizes.
func (b PlatformBuilder) WithSettings(s job.Settings) PlatformBuilder {
	b.settings = s
	return b
}

// WithMonitor registers the engine and components with a monitor.
func (b PlatformBuilder) WithMonitor(monitor *monitoring.Monitor) PlatformBuilder {
	b.monitor = monitor
	return b
}

// Build creates the engine, the accelerator and the driver and connects
// them.
func (b PlatformBuilder) Build(name string) (*Platform, error) {
	if err := b.settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid platform settings")
	}

	engine := sim.NewSerialEngine()
	freq := b.settings.Freq()

	if b.monitor != nil {
		b.monitor.RegisterEngine(engine)
	}

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		WithBufferSize(b.settings.BufferSize).
		Build(name + ".Driver")

	if b.monitor != nil {
		b.monitor.RegisterComponent(driver)
	}

	accel := DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(freq).
		WithBufferSize(b.settings.BufferSize).
		WithMonitor(b.monitor).
		Build(name + ".Accel")

	driver.RegisterDevice(accel)

	return &Platform{
		Engine: engine,
		Accel:  accel,
		Driver: driver,
	}, nil
}
