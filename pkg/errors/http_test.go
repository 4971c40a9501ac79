package errors_test

import (
	"fmt"
	"testing"

	pkgErrors "fanhub-webhooks/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	base := pkgErrors.NewHTTPError(400, "Invalid payload")
	wrapped := fmt.Errorf("bind: %w", base)

	got, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to unwrap")
	}
	if got.Code != 400 || got.Message != "Invalid payload" {
		t.Errorf("unexpected error: %+v", got)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not unwrap")
	}
}

func TestWithDetails(t *testing.T) {
	base := pkgErrors.NewHTTPError(500, "Failed to forward to workflow")
	detailed := base.WithDetails("502 Bad Gateway")

	if base.Details != "" {
		t.Errorf("WithDetails must not mutate the receiver")
	}
	if detailed.Error() != "500 Failed to forward to workflow: 502 Bad Gateway" {
		t.Errorf("unexpected message: %s", detailed.Error())
	}
}
