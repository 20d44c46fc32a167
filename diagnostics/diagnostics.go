package diagnostics

import (
	"fmt"

	"github.com/golang/glog"
)

// Severity classifies how serious a diagnostic is and whether it unwinds
// interpretation.
type Severity int

const (
	// Information is a purely informational note, never fatal.
	Information Severity = iota
	// Warning flags a questionable but survivable condition.
	Warning
	// RecoverableError is user-actionable and unwinds interpretation via the
	// fatal-sentinel channel, but is reported with enough context that the
	// input program can plausibly be fixed.
	RecoverableError
	// FatalError is an invariant violation or deadline exceedance: it always
	// unwinds interpretation.
	FatalError
)

func (s Severity) String() string {
	switch s {
	case Information:
		return "Information"
	case Warning:
		return "Warning"
	case RecoverableError:
		return "RecoverableError"
	case FatalError:
		return "FatalError"
	default:
		return "Unknown"
	}
}

// Code is a stable diagnostic identifier, e.g. "PP0013".
type Code string

const (
	// CodeUnsupportedForIn is raised when a for-in loop cannot be soundly
	// residualized.
	CodeUnsupportedForIn Code = "PP0013"
	// CodeIntrospectionJoin is raised when two abrupt completions with
	// different kinds are joined under an abstract condition.
	CodeIntrospectionJoin Code = "PP0014"
	// CodeUnsoundPropertyAccess is raised when a non-simple base prevents
	// sound abstract property access.
	CodeUnsoundPropertyAccess Code = "PP0015"
	// CodeDeadlineExceeded is raised when the realm's wall-clock deadline is
	// exceeded.
	CodeDeadlineExceeded Code = "PP0099"
)

// Diagnostic is a single reported condition.
type Diagnostic struct {
	Message  string
	Location Location
	Code     Code
	Severity Severity
}

// Error implements the error interface so a Diagnostic can travel on Go's
// exceptional channel when it is fatal.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s %s: %s:%d:%d: %s",
		d.Severity, d.Code, d.Location.Source(), d.Location.Line(), d.Location.Column(), d.Message)
}

// Handler receives diagnostics as they are reported. The realm holds exactly
// one Handler; a nil Handler is replaced by DiscardHandler.
type Handler interface {
	Handle(d *Diagnostic)
}

// HandlerFunc adapts a plain function to a Handler.
type HandlerFunc func(d *Diagnostic)

// Handle implements Handler.
func (f HandlerFunc) Handle(d *Diagnostic) { f(d) }

// DiscardHandler drops every diagnostic; used as the realm's zero-value
// handler so callers are never required to wire one up for smoke tests.
var DiscardHandler Handler = HandlerFunc(func(*Diagnostic) {})

// Collector accumulates diagnostics in report order and also logs them via
// glog, in the manner of cel-go's codelab package logging at module
// boundaries. It satisfies Handler.
type Collector struct {
	reported []*Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Handle implements Handler.
func (c *Collector) Handle(d *Diagnostic) {
	c.reported = append(c.reported, d)
	switch d.Severity {
	case FatalError:
		glog.Errorf("%s", d.Error())
	case RecoverableError:
		glog.Warningf("%s", d.Error())
	case Warning:
		glog.Warningf("%s", d.Error())
	default:
		glog.V(1).Infof("%s", d.Error())
	}
}

// Diagnostics returns every diagnostic reported so far, in report order.
func (c *Collector) Diagnostics() []*Diagnostic {
	out := make([]*Diagnostic, len(c.reported))
	copy(out, c.reported)
	return out
}

// HasFatal reports whether a FatalError has been recorded.
func (c *Collector) HasFatal() bool {
	for _, d := range c.reported {
		if d.Severity == FatalError {
			return true
		}
	}
	return false
}

// String renders every diagnostic, one per line, newest last.
func (c *Collector) String() string {
	out := ""
	for i, d := range c.reported {
		if i > 0 {
			out += "\n"
		}
		out += d.Error()
	}
	return out
}

// Sentinel is the value thrown by the interpreter to unwind on a fatal
// diagnostic: the engine signals this by throwing a sentinel that the
// top-level driver must intercept.
type Sentinel struct {
	Diagnostic *Diagnostic
}

func (s *Sentinel) Error() string { return s.Diagnostic.Error() }

// NewSentinel wraps a diagnostic as an unwinding sentinel and reports it to
// the given handler first.
func NewSentinel(h Handler, d *Diagnostic) *Sentinel {
	if h == nil {
		h = DiscardHandler
	}
	h.Handle(d)
	return &Sentinel{Diagnostic: d}
}

// InvariantViolation panics with a clear message naming the offended
// invariant: invariant violations are always fatal.
func InvariantViolation(name, detail string) {
	panic(fmt.Sprintf("invariant violated: %s: %s", name, detail))
}
