package reactor

import "fmt"

// Status is the closed error/result taxonomy shared by every operation
// exposed by the reactor. StatusOK is the zero value and the only one
// for which OK reports true.
type Status uint8

const (
	// StatusOK indicates success.
	StatusOK Status = iota
	// StatusTimeout indicates a deadline elapsed before readiness.
	StatusTimeout
	// StatusCancelled indicates the operation was removed by explicit cancellation.
	StatusCancelled
	// StatusStopped indicates the service was stopped: scheduling was
	// refused, or a pending operation was drained during shutdown.
	StatusStopped
	// StatusInvalid indicates a null callback, out-of-range kind, an
	// invalid descriptor reported by the multiplexer, or a bad state
	// transition.
	StatusInvalid
	// StatusNoEntry indicates a lookup or cancellation target does not exist.
	StatusNoEntry
	// StatusNoMemory indicates an allocation failure during scheduling.
	StatusNoMemory
	// StatusInProgress indicates an operation already pending for the
	// same (fd, kind), a loop already running, or a stop already in
	// progress.
	StatusInProgress
	// StatusSysFail indicates an underlying system call failed in a helper.
	StatusSysFail
	// StatusEOF indicates an orderly end of stream in a helper.
	StatusEOF
)

// String renders the status. Every value formats to a non-empty string;
// the reference implementation this was translated from left sysfail and
// eof unformatted, which is a defect rather than intended behaviour.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTimeout:
		return "timeout"
	case StatusCancelled:
		return "cancelled"
	case StatusStopped:
		return "stopped"
	case StatusInvalid:
		return "invalid"
	case StatusNoEntry:
		return "no-entry"
	case StatusNoMemory:
		return "no-memory"
	case StatusInProgress:
		return "in-progress"
	case StatusSysFail:
		return "sysfail"
	case StatusEOF:
		return "eof"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Error implements the error interface so a Status can be returned and
// matched directly with errors.Is.
func (s Status) Error() string {
	return s.String()
}

// OK reports whether the status represents success.
func (s Status) OK() bool {
	return s == StatusOK
}
