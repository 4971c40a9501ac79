package http

import (
	"errors"
	"net/http"

	"fanhub-webhooks/internal/approval"
	"fanhub-webhooks/internal/workflow"
	pkgErrors "fanhub-webhooks/pkg/errors"
)

var (
	errInvalidPayload = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	errForwardFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to forward to workflow")
)

// mapError translates approval errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var fwdErr *workflow.ForwardError
	switch {
	case errors.Is(err, approval.ErrInvalidPayload):
		return errInvalidPayload
	case errors.As(err, &fwdErr):
		return errForwardFailed.WithDetails(fwdErr.Reason)
	default:
		return err
	}
}
