package verify

import (
	"fmt"
	"math"

	"github.com/sarchlab/sysmac/job"
	"github.com/sarchlab/sysmac/systolic"
)

// RunLint performs static checks on the jobs of a file. Entries that cannot be
// converted to jobs are skipped; job.File.Validate reports those.
func RunLint(f *job.File) []Issue {
	var issues []Issue

	for i, spec := range f.Specs {
		j, err := spec.Job()
		if err != nil {
			continue
		}

		name := spec.Label(i)
		issues = append(issues, lintWrap(i, name, j)...)

		if want, ok := spec.Expected(); ok {
			issues = append(issues, lintExpect(i, name, j, want)...)
		}
	}

	return issues
}

func lintWrap(index int, name string, j systolic.Job) []Issue {
	var issues []Issue

	for lane := 0; lane < systolic.NumLanes; lane++ {
		for term, sum := range RunningSums(j, lane) {
			if sum >= math.MinInt16 && sum <= math.MaxInt16 {
				continue
			}

			issues = append(issues, Issue{
				Type: IssueWrap,
				Job:  index,
				Name: name,
				Lane: lane,
				Term: term,
				Message: fmt.Sprintf(
					"running sum %d wraps to %d after term %d",
					sum, int16(sum), term),
				Details: map[string]interface{}{
					"sum":     sum,
					"wrapped": int16(sum),
				},
			})

			break
		}
	}

	return issues
}

func lintExpect(
	index int,
	name string,
	j systolic.Job,
	want [systolic.NumLanes]int16,
) []Issue {
	var issues []Issue

	for _, m := range Compare(Expected(j), want) {
		issues = append(issues, Issue{
			Type: IssueExpect,
			Job:  index,
			Name: name,
			Lane: m.Lane,
			Term: -1,
			Message: fmt.Sprintf(
				"file expects %d, reference model gives %d", m.Got, m.Want),
		})
	}

	return issues
}
