package job

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"
)

// Settings are the run parameters of a simulation.
type Settings struct {
	FreqMHz    float64 `yaml:"freq_mhz"`
	BufferSize int     `yaml:"buffer_size"`
	Trace      bool    `yaml:"trace"`
}

// DefaultSettings returns the settings used when a job file leaves the sim
// section out.
func DefaultSettings() Settings {
	return Settings{
		FreqMHz:    50,
		BufferSize: 4,
	}
}

// Freq converts the configured frequency to an Akita frequency.
func (s Settings) Freq() sim.Freq {
	return sim.Freq(s.FreqMHz) * sim.MHz
}

// Validate checks that the settings can build a platform.
func (s Settings) Validate() error {
	if s.FreqMHz <= 0 {
		return errors.Errorf("freq_mhz must be positive, got %g", s.FreqMHz)
	}

	if s.BufferSize < 1 {
		return errors.Errorf("buffer_size must be at least 1, got %d",
			s.BufferSize)
	}

	return nil
}
