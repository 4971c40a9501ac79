package webhook

import (
	"bytes"
	"time"
)

// NewConfig builds an immutable Config. The secret is mandatory.
func NewConfig(secret []byte, opts ...Option) (Config, error) {
	if len(secret) == 0 {
		return Config{}, ErrMissingSecret
	}

	cfg := Config{
		secret:           bytes.Clone(secret),
		signatureHeader:  DefaultSignatureHeader,
		timestampHeader:  DefaultTimestampHeader,
		toleranceSeconds: DefaultToleranceSeconds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.signatureHeader == "" || cfg.timestampHeader == "" {
		return Config{}, ErrEmptyHeaderName
	}
	if cfg.toleranceSeconds < 0 {
		return Config{}, ErrInvalidTolerance
	}

	return cfg, nil
}

func (c Config) SignatureHeader() string { return c.signatureHeader }
func (c Config) TimestampHeader() string { return c.timestampHeader }
func (c Config) ToleranceSeconds() int   { return c.toleranceSeconds }

// Validator verifies signed webhook requests for one Config.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	cfg Config
	now func() time.Time
}

// NewValidator creates a Validator bound to cfg.
func NewValidator(cfg Config) *Validator {
	return &Validator{
		cfg: cfg,
		now: time.Now,
	}
}

// WithClock replaces the time source used for the freshness check.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Config returns the configuration the validator was built with.
func (v *Validator) Config() Config {
	return v.cfg
}
