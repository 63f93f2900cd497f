package systolic

import (
	"github.com/sarchlab/akita/v4/sim"
)

// A Device is a simulated MAC accelerator that a driver can clock through its
// bus port.
type Device interface {
	Name() string

	// GetBusPort returns the port that accepts PinMsgs. Every PinMsg is
	// answered with a ResultMsg sent back to the msg source.
	GetBusPort() sim.Port

	// Snapshot returns a copy of the controller registers.
	Snapshot() Snapshot
}
