package http

import (
	"errors"
	"net/http"

	"fanhub-webhooks/internal/signup"
	"fanhub-webhooks/internal/workflow"
	pkgErrors "fanhub-webhooks/pkg/errors"
)

var (
	errInvalidPayload = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	errInvalidEmail   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid email format")
	errForwardFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to forward to workflow")
)

// mapError translates signup errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as a generic 500.
func (h *handler) mapError(err error) error {
	var fwdErr *workflow.ForwardError
	switch {
	case errors.Is(err, signup.ErrInvalidPayload):
		return errInvalidPayload
	case errors.Is(err, signup.ErrInvalidEmail):
		return errInvalidEmail
	case errors.As(err, &fwdErr):
		return errForwardFailed.WithDetails(fwdErr.Reason)
	default:
		return err
	}
}
