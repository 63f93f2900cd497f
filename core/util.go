package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/sysmac/systolic"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState writes the registers of a controller snapshot as a table.
func PrintState(w io.Writer, s systolic.Snapshot) {
	regTable := table.NewWriter()
	regTable.SetOutputMirror(w)
	regTable.SetTitle(fmt.Sprintf(
		"Cycle %d  %s  pe_index=%d  phase=%d",
		s.Cycle, s.State, s.PEIndex, s.Phase))

	regTable.AppendHeader(table.Row{"Lane", "Weight", "Bias", "Delay", "Acc", "Acc (hex)"})

	for i, pe := range s.PEs {
		regTable.AppendRow(table.Row{
			fmt.Sprintf("PE%d", i),
			pe.Weight,
			pe.Bias,
			pe.Delay,
			pe.Acc,
			fmt.Sprintf("0x%04X", uint16(pe.Acc)),
		})
	}

	regTable.Render()
}

func LogState(s systolic.Snapshot) {
	slog.Debug("StateCheckpoint",
		"Cycle", s.Cycle,
		"State", s.State.String(),
		"PEIndex", s.PEIndex,
		"Phase", s.Phase,
		"Accumulators", s.PEs.Accumulators(),
	)
}
