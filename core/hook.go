package core

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/sysmac/systolic"
)

// HookPosCycle marks the end of a clock edge of a core. The hook item is a
// CycleRecord.
var HookPosCycle = &sim.HookPos{Name: "Core Cycle"}

// CycleRecord describes one clock edge: what the pins showed before the edge
// and what the registers hold after it.
type CycleRecord struct {
	Cycle   uint64
	Time    sim.VTimeInSec
	State   systolic.State
	Next    systolic.State
	Pins    systolic.Pins
	Outputs systolic.Outputs
	PEs     systolic.Array
}

// WaveformRecorder is a hook that keeps every CycleRecord of the cores it is
// attached to.
type WaveformRecorder struct {
	records []CycleRecord
}

// NewWaveformRecorder creates an empty recorder.
func NewWaveformRecorder() *WaveformRecorder {
	return &WaveformRecorder{}
}

// Func records the cycle if the hook fires at HookPosCycle.
func (r *WaveformRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosCycle {
		return
	}

	record, ok := ctx.Item.(CycleRecord)
	if !ok {
		return
	}

	r.records = append(r.records, record)
}

// Records returns the recorded cycles in order.
func (r *WaveformRecorder) Records() []CycleRecord {
	return r.records
}

// Render formats the recorded waveform as a table.
func (r *WaveformRecorder) Render() string {
	t := table.NewWriter()
	t.SetTitle("Waveform")
	t.AppendHeader(table.Row{
		"Cycle", "rst_n", "ena", "ui_in", "State", "uo_out", "uio_out",
		"Acc0", "Acc1", "Acc2", "Acc3",
	})

	for _, rec := range r.records {
		pins := systolic.Frame(rec.Outputs)
		t.AppendRow(table.Row{
			rec.Cycle,
			bit(rec.Pins.RstN),
			bit(rec.Pins.Ena),
			fmt.Sprintf("0x%02X", rec.Pins.UIIn),
			stateCell(rec),
			fmt.Sprintf("0x%02X", pins.UOOut),
			fmt.Sprintf("0x%02X", pins.UIOOut),
			rec.PEs[0].Acc,
			rec.PEs[1].Acc,
			rec.PEs[2].Acc,
			rec.PEs[3].Acc,
		})
	}

	return t.Render()
}

func stateCell(rec CycleRecord) string {
	if rec.State == rec.Next {
		return rec.State.String()
	}

	return strings.Join([]string{rec.State.String(), rec.Next.String()}, "->")
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
