package middleware

import (
	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/pkg/log"
	"fanhub-webhooks/pkg/metrics"
)

// DefaultMaxBodyBytes caps webhook bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

type Middleware struct {
	l            log.Logger
	validator    *webhook.Validator
	guard        *webhook.Guard
	metrics      *metrics.Metrics
	maxBodyBytes int64
}

func New(l log.Logger, validator *webhook.Validator, guard *webhook.Guard, m *metrics.Metrics, maxBodyBytes int64) Middleware {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return Middleware{
		l:            l,
		validator:    validator,
		guard:        guard,
		metrics:      m,
		maxBodyBytes: maxBodyBytes,
	}
}
