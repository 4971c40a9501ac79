package workflow

import "errors"

// ErrForwardFailed marks a forward attempt the caller treats as fatal.
var ErrForwardFailed = errors.New("failed to forward to workflow")

// ForwardError carries the forwarder's failure reason.
type ForwardError struct {
	Reason string
}

func (e *ForwardError) Error() string {
	return ErrForwardFailed.Error() + ": " + e.Reason
}

func (e *ForwardError) Unwrap() error {
	return ErrForwardFailed
}
