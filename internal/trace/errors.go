package trace

import "errors"

// Input contract violations. Tracers do not check sortedness.
var (
	// ErrEmptySequence indicates Kadane was given nothing to scan.
	ErrEmptySequence = errors.New("trace: empty sequence")

	// ErrSequenceTooLong indicates a sequence longer than MaxLen.
	ErrSequenceTooLong = errors.New("trace: sequence longer than max length")
)

// InputError wraps a contract violation with the algorithm that rejected it.
type InputError struct {
	Algorithm string
	Len       int
	Wrapped   error
}

func (e *InputError) Error() string {
	return e.Algorithm + ": " + e.Wrapped.Error()
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
