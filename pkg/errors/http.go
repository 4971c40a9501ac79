package errors

import (
	"errors"
	"fmt"
)

// HTTPError is an error that carries the status code and client-facing message
// it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
	Details string
}

func (e *HTTPError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details string) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// AsHTTPError unwraps err into an HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
