package api

import (
	"github.com/pkg/errors"
	"github.com/sarchlab/sysmac/systolic"
)

// drainStart is the offset of the first drain cycle inside a job's stimulus.
const drainStart = 2*systolic.LoadCycles + systolic.ComputeCycles

// JobResult collects the drained lanes of a submitted job.
type JobResult struct {
	Job     systolic.Job
	Results [systolic.NumLanes]int16

	// StartCycle is the controller cycle of the first LOAD_W beat.
	StartCycle uint64

	received int
	err      error
}

// Done tells if every cycle of the job has been answered by the device.
func (r *JobResult) Done() bool {
	return r.received == systolic.JobCycles
}

// Err returns the first misalignment found while collecting the job, if any.
func (r *JobResult) Err() error {
	return r.err
}

func (r *JobResult) record(offset int, rsp *systolic.ResultMsg) {
	if offset == 0 {
		r.StartCycle = rsp.Cycle
		if rsp.State != systolic.LoadWeight {
			r.fail(errors.Errorf(
				"job started in %s at cycle %d", rsp.State, rsp.Cycle))
		}
	}

	r.received++

	if offset < drainStart {
		return
	}

	lane := offset - drainStart
	out := rsp.Outputs

	switch {
	case !out.Valid:
		r.fail(errors.Errorf(
			"no valid output for lane %d at cycle %d", lane, rsp.Cycle))
	case out.Lane != lane:
		r.fail(errors.Errorf(
			"expected lane %d at cycle %d, got lane %d",
			lane, rsp.Cycle, out.Lane))
	default:
		r.Results[lane] = out.Result()
	}
}

func (r *JobResult) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
