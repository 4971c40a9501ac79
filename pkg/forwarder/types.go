package forwarder

import (
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	UserAgent      = "fanhub-webhooks/1.0"
	SourceHeader   = "X-Webhook-Source"
	SourceName     = "fanhub"

	maxResponseBytes = 1 << 20
	unknownError     = "Unknown error"
)

// Result is the outcome of a single forward attempt.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BreakerConfig configures the optional circuit breaker around the outbound call.
type BreakerConfig struct {
	Name        string
	MaxFailures uint32        // consecutive failures that open the breaker
	OpenTimeout time.Duration // how long the breaker stays open
	MaxRequests uint32        // requests allowed through while half-open
}

// Observer receives the outcome of every forward attempt.
type Observer func(result Result, elapsed time.Duration)

// StatusError reports a non-2xx response from the workflow engine.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
}
