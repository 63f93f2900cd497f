// Package verify provides the checking tools for MAC array jobs.
//
// This package implements two complementary verification stages:
//
// 1. Static Lint (lint.go): checks a job file before it is simulated
//   - WRAP checks: a lane's running sum leaves the 16-bit range
//   - EXPECT checks: an expected result in the file disagrees with the
//     reference model
//
// 2. Reference Model (funcsim.go): closed-form lane results
//   - No pipeline, no bus, no clock: each lane is a dot product over its
//     window of activations
//   - Useful for isolating stimulus bugs from simulator bugs
//
// # Lane Windows
//
// Lane i receives the activation stream delayed by i cycles, so over the
// seven compute cycles it accumulates x[0..6-i]:
//
//	acc[i] = bias[i] + sum_{k=0}^{6-i} weight[i] * x[k]
//
// The accumulator is 16 bits wide and wraps.
//
// # Usage Example
//
//	f, _ := job.LoadFile("jobs.yaml")
//	issues := verify.RunLint(f)
//
//	report := verify.NewReport(issues)
//	report.Check("scenario_a", j, got)
//	report.WriteReport(os.Stdout)
package verify

import (
	"fmt"

	"github.com/sarchlab/sysmac/systolic"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueWrap   IssueType = "WRAP"   // Running sum leaves the int16 range
	IssueExpect IssueType = "EXPECT" // Expected value disagrees with the model
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Job     int    // Index of the job in the file
	Name    string // Job name
	Lane    int    // Lane, -1 if not applicable
	Term    int    // Accumulated term, -1 if not applicable
	Message string
	Details map[string]interface{}
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s lane %d: %s", i.Type, i.Name, i.Lane, i.Message)
}

// Mismatch is one lane whose simulated result differs from the reference.
type Mismatch struct {
	Lane int
	Want int16
	Got  int16
}

func (m Mismatch) String() string {
	return fmt.Sprintf("lane %d: want %d, got %d", m.Lane, m.Want, m.Got)
}

// Compare returns the lanes where got differs from want.
func Compare(want, got [systolic.NumLanes]int16) []Mismatch {
	var mismatches []Mismatch

	for lane := range want {
		if want[lane] != got[lane] {
			mismatches = append(mismatches, Mismatch{
				Lane: lane,
				Want: want[lane],
				Got:  got[lane],
			})
		}
	}

	return mismatches
}
