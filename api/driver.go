// Package api defines the driver API that plays the test bench of the MAC
// array accelerator.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"
	"github.com/sarchlab/sysmac/systolic"
)

// Driver provides the interface to control an accelerator.
type Driver interface {
	sim.Component

	// RegisterDevice registers a device to the driver. The driver will
	// establish a connection to the bus port of the device.
	RegisterDevice(device systolic.Device)

	// Reset holds rst_n low for the given number of cycles and then releases
	// it for one enabled cycle, which leaves the device at the start of a
	// job.
	Reset(cycles int)

	// Hold drives ena low for the given number of cycles.
	Hold(cycles int)

	// Drive queues raw pin samples, one per cycle.
	Drive(pins ...systolic.Pins)

	// Submit queues the 19-cycle stimulus of a job. The result is filled in
	// while the simulation runs. The job must be queued when the device is
	// at the start of a job, otherwise the result reports an error.
	Submit(job systolic.Job) *JobResult

	// Run will run all the queued cycles.
	Run()

	// Samples returns one sample per completed cycle, in order.
	Samples() []Sample
}

// Sample pairs the pins a driver drove in a cycle with what the device
// showed on its outputs during that cycle.
type Sample struct {
	Cycle   uint64
	State   systolic.State
	In      systolic.Pins
	Outputs systolic.Outputs
	Out     systolic.PinOutputs
}

type stimulus struct {
	pins   systolic.Pins
	job    *JobResult
	offset int
}

type inflight struct {
	stimulus
	id string
}

type driverImpl struct {
	*sim.TickingComponent

	port   sim.Port
	remote sim.RemotePort

	pending  []stimulus
	inflight []inflight
	samples  []Sample
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.collect() || madeProgress
	madeProgress = d.feed() || madeProgress

	return madeProgress
}

func (d *driverImpl) feed() bool {
	if len(d.pending) == 0 {
		return false
	}

	if !d.port.CanSend() {
		return false
	}

	s := d.pending[0]
	msg := systolic.PinMsgBuilder{}.
		WithSrc(d.port.AsRemote()).
		WithDst(d.remote).
		WithPins(s.pins).
		Build()

	err := d.port.Send(msg)
	if err != nil {
		panic("accelerator cannot handle the pin rate")
	}

	d.pending = d.pending[1:]
	d.inflight = append(d.inflight, inflight{stimulus: s, id: msg.ID})

	return true
}

func (d *driverImpl) collect() bool {
	madeProgress := false

	for {
		item := d.port.PeekIncoming()
		if item == nil {
			return madeProgress
		}

		rsp, ok := item.(*systolic.ResultMsg)
		if !ok {
			panic(fmt.Sprintf("driver cannot handle msg of type %T", item))
		}

		d.handleResult(rsp)
		d.port.RetrieveIncoming()
		madeProgress = true
	}
}

func (d *driverImpl) handleResult(rsp *systolic.ResultMsg) {
	if len(d.inflight) == 0 || d.inflight[0].id != rsp.RespondTo {
		panic(fmt.Sprintf("unexpected response to %s", rsp.RespondTo))
	}

	s := d.inflight[0]
	d.inflight = d.inflight[1:]

	d.samples = append(d.samples, Sample{
		Cycle:   rsp.Cycle,
		State:   rsp.State,
		In:      s.pins,
		Outputs: rsp.Outputs,
		Out:     rsp.Pins,
	})

	if s.job != nil {
		s.job.record(s.offset, rsp)
	}
}

// RegisterDevice registers a device to the driver. The driver will
// establish a connection to the device.
func (d *driverImpl) RegisterDevice(device systolic.Device) {
	devicePort := device.GetBusPort()

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.Name() + "." + device.Name() + ".Conn")
	conn.PlugIn(d.port)
	conn.PlugIn(devicePort)

	d.remote = devicePort.AsRemote()
}

func (d *driverImpl) Reset(cycles int) {
	for i := 0; i < cycles; i++ {
		d.Drive(systolic.ResetPins())
	}

	d.Drive(systolic.RunPins(0))
}

func (d *driverImpl) Hold(cycles int) {
	for i := 0; i < cycles; i++ {
		d.Drive(systolic.HoldPins())
	}
}

func (d *driverImpl) Drive(pins ...systolic.Pins) {
	for _, p := range pins {
		d.pending = append(d.pending, stimulus{pins: p})
	}
}

func (d *driverImpl) Submit(job systolic.Job) *JobResult {
	result := &JobResult{Job: job}

	for i, b := range job.Stimulus() {
		d.pending = append(d.pending, stimulus{
			pins:   systolic.RunPins(b),
			job:    result,
			offset: i,
		})
	}

	return result
}

// Run runs all the queued cycles.
func (d *driverImpl) Run() {
	if d.remote == "" {
		panic("no device registered")
	}

	d.TickLater()
	d.Engine.Run()
}

func (d *driverImpl) Samples() []Sample {
	return d.samples
}
