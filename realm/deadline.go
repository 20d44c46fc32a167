package realm

import (
	"time"

	"github.com/golang/glog"

	"github.com/yernsun/prepack/diagnostics"
)

// DeadlineTracker polls a wall-clock deadline periodically rather than
// after every node, to keep the check cheap.
// Grounded on interpreter/runtimecost.go's CostTracker, which accumulates a
// running counter and is consulted by the interpreter loop rather than
// wired into every single node evaluation.
type DeadlineTracker struct {
	deadline time.Time
	hasLimit bool
	checks   uint64
	// pollEvery bounds how often Poll actually calls time.Now(): every
	// pollEvery-th call is when the wall clock is read.
	pollEvery uint64
}

// NewDeadlineTracker returns a tracker with no deadline set; Poll is then
// always a no-op. pollEvery of 0 defaults to checking the clock every call.
func NewDeadlineTracker(pollEvery uint64) *DeadlineTracker {
	if pollEvery == 0 {
		pollEvery = 1
	}
	return &DeadlineTracker{pollEvery: pollEvery}
}

// SetDeadline arms the tracker with an absolute wall-clock deadline.
func (dt *DeadlineTracker) SetDeadline(d time.Time) {
	dt.deadline = d
	dt.hasLimit = true
	glog.V(1).Infof("deadline configured: %v", d)
}

// Exceeded reports whether the deadline, if any, has passed as of now.
func (dt *DeadlineTracker) Exceeded(now time.Time) bool {
	return dt.hasLimit && !now.Before(dt.deadline)
}

// Poll increments the internal counter and, every pollEvery calls, checks
// the wall clock against the deadline. Returns true when the deadline
// has been exceeded.
func (dt *DeadlineTracker) Poll(now func() time.Time) bool {
	dt.checks++
	if dt.checks%dt.pollEvery != 0 {
		return false
	}
	return dt.Exceeded(now())
}

// DeadlineTracker returns the realm's own tracker, creating it on first use
// with a poll interval of 256 calls; its SetDeadline arms the deadline.
// Stored separately from Flags since it carries mutable poll-counter state
// rather than a fixed configuration toggle.
func (r *Realm) DeadlineTracker() *DeadlineTracker {
	if r.deadline == nil {
		r.deadline = NewDeadlineTracker(256)
	}
	return r.deadline
}

// CheckDeadline polls the realm's deadline tracker and, if exceeded,
// reports a fatal CodeDeadlineExceeded diagnostic and returns the unwinding
// sentinel for the caller to throw.
func (r *Realm) CheckDeadline(now func() time.Time, loc diagnostics.Location) *diagnostics.Sentinel {
	if !r.DeadlineTracker().Poll(now) {
		return nil
	}
	return diagnostics.NewSentinel(r.diagnostics, &diagnostics.Diagnostic{
		Message:  "wall-clock deadline exceeded during partial evaluation",
		Location: loc,
		Code:     diagnostics.CodeDeadlineExceeded,
		Severity: diagnostics.FatalError,
	})
}
