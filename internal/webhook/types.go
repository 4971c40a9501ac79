package webhook

import "errors"

const (
	DefaultSignatureHeader  = "x-signature"
	DefaultTimestampHeader  = "x-timestamp"
	DefaultToleranceSeconds = 300

	// SignaturePrefix is accepted in front of the hex digest and stripped before comparison.
	SignaturePrefix = "sha256="
)

// Validation failure reasons. Authentication failures stay generic on purpose.
const (
	ReasonMissingSignature   = "Missing signature header"
	ReasonInvalidSignature   = "Invalid signature or timestamp"
	ReasonVerificationFailed = "Signature verification failed"
)

var (
	ErrMissingSecret    = errors.New("webhook secret is required")
	ErrInvalidTolerance = errors.New("timestamp tolerance must be >= 0")
	ErrEmptyHeaderName  = errors.New("header name must not be empty")
)

// Config describes one webhook consumer. It is immutable once built by NewConfig.
type Config struct {
	secret           []byte
	signatureHeader  string
	timestampHeader  string
	toleranceSeconds int
}

// Option customises a Config.
type Option func(*Config)

// WithSignatureHeader overrides the header carrying the signature.
func WithSignatureHeader(name string) Option {
	return func(c *Config) { c.signatureHeader = name }
}

// WithTimestampHeader overrides the header carrying the unix timestamp.
func WithTimestampHeader(name string) Option {
	return func(c *Config) { c.timestampHeader = name }
}

// WithTolerance sets the accepted clock skew in seconds. Zero disables the freshness check.
func WithTolerance(seconds int) Option {
	return func(c *Config) { c.toleranceSeconds = seconds }
}

// ValidationResult is the outcome of ValidateWebhook.
type ValidationResult struct {
	Valid bool
	Error string
}

// SecurityConfig holds the request guard settings applied in front of the validator.
type SecurityConfig struct {
	AllowedIPs      []string // IP or CIDR allow list, empty means any
	RateLimitPerMin int      // Max requests per minute per client, 0 disables
}
