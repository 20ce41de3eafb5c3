package numeric

import "github.com/cpmech/gosl/chk"

// ErrorKind classifies a failure per the three kinds spec.md §7 names:
// invalid input (rejected at construction/entry), numerical failure
// (surfaced from an iterative routine), and geometric impossibility
// (the requested construction has no valid answer).
type ErrorKind int

const (
	InvalidInput ErrorKind = iota
	NumericalFailure
	GeometricImpossibility
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NumericalFailure:
		return "numerical failure"
	case GeometricImpossibility:
		return "geometric impossibility"
	default:
		return "unknown"
	}
}

// Errf builds an error tagged with kind, in the teacher's chk.Err idiom.
// Every construction-time rejection in knot/basis/curve/surface goes
// through this so callers can recover the kind with ClassifyError.
func Errf(kind ErrorKind, format string, args ...interface{}) error {
	return &kindError{kind: kind, err: chk.Err(kind.String()+": "+format, args...)}
}

type kindError struct {
	kind ErrorKind
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }
func (e *kindError) Unwrap() error { return e.err }

// ClassifyError recovers the ErrorKind tagged on err by Errf, defaulting to
// NumericalFailure for errors that did not originate here (e.g. a raw
// gonum error bubbled up from a solve).
func ClassifyError(err error) ErrorKind {
	if ke, ok := err.(*kindError); ok {
		return ke.kind
	}
	return NumericalFailure
}
