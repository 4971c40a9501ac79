package forwarder

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Forwarder posts JSON payloads to the workflow engine.
type Forwarder struct {
	httpClient *http.Client
	timeout    time.Duration
	breaker    *gobreaker.CircuitBreaker
	observer   Observer
}

// Option customises a Forwarder.
type Option func(*Forwarder)

// WithHTTPClient uses client for outbound calls. A client without a timeout
// gets the forwarder timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Forwarder) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithTimeout bounds each outbound call.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Forwarder) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithBreaker wraps outbound calls in a circuit breaker.
func WithBreaker(cfg BreakerConfig) Option {
	return func(f *Forwarder) {
		f.breaker = newBreaker(cfg)
	}
}

// WithObserver registers a hook called after every attempt.
func WithObserver(o Observer) Option {
	return func(f *Forwarder) { f.observer = o }
}

// New creates a Forwarder.
func New(opts ...Option) *Forwarder {
	f := &Forwarder{
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.httpClient.Timeout == 0 {
		client := *f.httpClient
		client.Timeout = f.timeout
		f.httpClient = &client
	}

	return f
}

func newBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker {
	if cfg.Name == "" {
		cfg.Name = "workflow-forwarder"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// 4xx means the engine is up and rejected the event; only 5xx and
		// transport errors count against the breaker.
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.Code < http.StatusInternalServerError
			}
			return err == nil
		},
	})
}
