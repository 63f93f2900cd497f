// Package job reads and writes the YAML files that describe simulation runs.
//
// A file looks like:
//
//	sim:
//	  freq_mhz: 50
//	  buffer_size: 4
//	  trace: false
//	jobs:
//	  - name: scenario_a
//	    weights: [1, 2, 3, 4]
//	    biases: [10, 20, 30, 40]
//	    activations: [10, 20, 30, 40, 0, 0, 0]
//	    expect: [110, 220, 330, 440]
//
// Byte values may be written signed (-128..127) or as raw bus bytes
// (0..255).
package job

import (
	"bytes"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sarchlab/sysmac/systolic"
	"gopkg.in/yaml.v3"
)

// File is the content of a job file.
type File struct {
	Settings Settings `yaml:"sim"`
	Specs    []Spec   `yaml:"jobs"`
}

// Spec describes one job as it appears in a file. Expect is optional.
type Spec struct {
	Name        string  `yaml:"name"`
	Weights     []int   `yaml:"weights"`
	Biases      []int   `yaml:"biases"`
	Activations []int   `yaml:"activations"`
	Expect      []int16 `yaml:"expect,omitempty"`
}

// Parse decodes a job file and validates it.
func Parse(data []byte) (*File, error) {
	f := &File{Settings: DefaultSettings()}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "decode job file")
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFile reads and parses a job file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read job file %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return f, nil
}

// Save writes the file to disk in YAML form.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "encode job file")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write job file %s", path)
	}

	return nil
}

// Validate checks the settings and every job of the file.
func (f *File) Validate() error {
	if err := f.Settings.Validate(); err != nil {
		return errors.Wrap(err, "sim")
	}

	if len(f.Specs) == 0 {
		return errors.New("no jobs")
	}

	for i, s := range f.Specs {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "job %d (%s)", i, s.Label(i))
		}
	}

	return nil
}

// Jobs converts every entry to a systolic job, in file order.
func (f *File) Jobs() ([]systolic.Job, error) {
	jobs := make([]systolic.Job, 0, len(f.Specs))

	for i, s := range f.Specs {
		j, err := s.Job()
		if err != nil {
			return nil, errors.Wrapf(err, "job %d (%s)", i, s.Label(i))
		}

		jobs = append(jobs, j)
	}

	return jobs, nil
}

// Label returns the name of the entry, or a positional name if it has none.
func (s Spec) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}

	return "job" + strconv.Itoa(index)
}

// Validate checks the lengths and value ranges of the entry.
func (s Spec) Validate() error {
	_, err := s.Job()
	return err
}

// Job converts the entry to a systolic job.
func (s Spec) Job() (systolic.Job, error) {
	var j systolic.Job

	if err := fill(j.Weights[:], s.Weights, "weights"); err != nil {
		return j, err
	}

	if err := fill(j.Biases[:], s.Biases, "biases"); err != nil {
		return j, err
	}

	if err := fill(j.Activations[:], s.Activations, "activations"); err != nil {
		return j, err
	}

	if s.Expect != nil && len(s.Expect) != systolic.NumLanes {
		return j, errors.Errorf("expect needs %d values, got %d",
			systolic.NumLanes, len(s.Expect))
	}

	return j, nil
}

// Expected returns the expected lane results and whether the entry has any.
func (s Spec) Expected() ([systolic.NumLanes]int16, bool) {
	var out [systolic.NumLanes]int16
	if len(s.Expect) != systolic.NumLanes {
		return out, false
	}

	copy(out[:], s.Expect)

	return out, true
}

// FromJob creates an entry that describes the job.
func FromJob(name string, j systolic.Job) Spec {
	return Spec{
		Name:        name,
		Weights:     widen(j.Weights[:]),
		Biases:      widen(j.Biases[:]),
		Activations: widen(j.Activations[:]),
	}
}

func fill(dst []int8, src []int, field string) error {
	if len(src) != len(dst) {
		return errors.Errorf("%s needs %d values, got %d",
			field, len(dst), len(src))
	}

	for i, v := range src {
		b, err := toByte(v)
		if err != nil {
			return errors.Wrapf(err, "%s[%d]", field, i)
		}

		dst[i] = b
	}

	return nil
}

func toByte(v int) (int8, error) {
	if v < -128 || v > 255 {
		return 0, errors.Errorf("value %d does not fit in a byte", v)
	}

	return int8(uint8(v)), nil
}

func widen(src []int8) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = int(v)
	}

	return out
}
