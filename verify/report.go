package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/sysmac/systolic"
)

// Outcome is the verification result of one simulated job.
type Outcome struct {
	Name       string
	Job        systolic.Job
	Want       [systolic.NumLanes]int16
	Got        [systolic.NumLanes]int16
	Mismatches []Mismatch
	Err        error
}

// Passed tells if the job drained the expected values without error.
func (o Outcome) Passed() bool {
	return o.Err == nil && len(o.Mismatches) == 0
}

// VerificationReport collects lint issues and job outcomes of a run.
type VerificationReport struct {
	LintIssues []Issue
	Outcomes   []Outcome
}

// NewReport creates a report that starts with the given lint issues.
func NewReport(issues []Issue) *VerificationReport {
	return &VerificationReport{LintIssues: issues}
}

// Check compares a simulated job against the reference model and records
// the outcome.
func (r *VerificationReport) Check(
	name string,
	j systolic.Job,
	got [systolic.NumLanes]int16,
) Outcome {
	want := Expected(j)

	return r.Add(Outcome{
		Name:       name,
		Job:        j,
		Want:       want,
		Got:        got,
		Mismatches: Compare(want, got),
	})
}

// Add records an outcome.
func (r *VerificationReport) Add(o Outcome) Outcome {
	r.Outcomes = append(r.Outcomes, o)
	return o
}

// Passed tells if every recorded job passed. Lint issues do not fail a run.
func (r *VerificationReport) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed() {
			return false
		}
	}

	return true
}

// Failed returns the number of jobs that did not pass.
func (r *VerificationReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed() {
			n++
		}
	}

	return n
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "MAC ARRAY VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	r.writeLint(w)
	r.writeOutcomes(w)

	fmt.Fprintln(w, separator)
	if r.Passed() {
		fmt.Fprintf(w, "PASSED: %d jobs\n", len(r.Outcomes))
	} else {
		fmt.Fprintf(w, "FAILED: %d of %d jobs\n", r.Failed(), len(r.Outcomes))
	}
	fmt.Fprintln(w)
}

func (r *VerificationReport) writeLint(w io.Writer) {
	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Lint (%d issues)", len(r.LintIssues)))
	t.AppendHeader(table.Row{"Type", "Job", "Lane", "Term", "Message"})

	for _, issue := range r.LintIssues {
		term := "-"
		if issue.Term >= 0 {
			term = fmt.Sprint(issue.Term)
		}

		t.AppendRow(table.Row{
			issue.Type, issue.Name, issue.Lane, term, issue.Message,
		})
	}

	t.Render()
}

func (r *VerificationReport) writeOutcomes(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Jobs")
	t.AppendHeader(table.Row{"Job", "Lane", "Want", "Got", "Status"})

	for _, o := range r.Outcomes {
		bad := make(map[int]bool)
		for _, m := range o.Mismatches {
			bad[m.Lane] = true
		}

		for lane := range o.Want {
			status := "ok"
			switch {
			case o.Err != nil:
				status = o.Err.Error()
			case bad[lane]:
				status = "MISMATCH"
			}

			t.AppendRow(table.Row{o.Name, lane, o.Want[lane], o.Got[lane], status})
		}

		t.AppendSeparator()
	}

	t.Render()
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
