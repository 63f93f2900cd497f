package systolic

// OutputEnableAll drives every bidirectional pin as an output. The high
// result byte leaves the chip on the bidirectional bank.
const OutputEnableAll uint8 = 0xFF

// Pins is one sample of the chip input pins.
type Pins struct {
	UIIn  uint8
	UIOIn uint8
	Ena   bool
	RstN  bool
}

// Inputs maps the pin sample to the logical controller inputs.
func (p Pins) Inputs() Inputs {
	return Inputs{
		RstN: p.RstN,
		Ena:  p.Ena,
		Data: p.UIIn,
		Aux:  p.UIOIn,
	}
}

// PinOutputs is one sample of the chip output pins.
type PinOutputs struct {
	UOOut  uint8
	UIOOut uint8
	UIOOE  uint8
}

// Frame maps the logical outputs onto the output pins: the low byte on the
// dedicated outputs, the high byte on the bidirectional bank.
func Frame(o Outputs) PinOutputs {
	return PinOutputs{
		UOOut:  o.Low,
		UIOOut: o.High,
		UIOOE:  OutputEnableAll,
	}
}

// Result returns the signed 16-bit value on the output pins.
func (p PinOutputs) Result() int16 {
	return JoinResult(p.UOOut, p.UIOOut)
}

// RunPins is a pin sample of an enabled, out-of-reset cycle.
func RunPins(data uint8) Pins {
	return Pins{UIIn: data, Ena: true, RstN: true}
}

// ResetPins is a pin sample that holds the chip in reset.
func ResetPins() Pins {
	return Pins{Ena: true}
}

// HoldPins is a pin sample with enable low.
func HoldPins() Pins {
	return Pins{RstN: true}
}
