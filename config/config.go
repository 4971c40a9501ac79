package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Webhook ingress
	Webhook   WebhookConfig
	RateLimit RateLimitConfig

	// Workflow engine egress
	Workflow WorkflowConfig

	// Endpoints
	Signup     EndpointConfig
	Approval   EndpointConfig
	Moderation ModerationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebhookConfig struct {
	Secret           string
	SignatureHeader  string
	TimestampHeader  string
	ToleranceSeconds int
	MaxBodyBytes     int64
}

type RateLimitConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

type WorkflowConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	OAuth2  OAuth2Config
	Breaker BreakerConfig
}

type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

type BreakerConfig struct {
	Enabled     bool
	MaxFailures int
	OpenTimeout time.Duration
}

// EndpointConfig is the per-integration forwarding policy.
type EndpointConfig struct {
	Path                string // path on the workflow engine
	ForwardFailureFatal bool   // fail the inbound request when forwarding fails
}

type ModerationConfig struct {
	Keywords []string
}

// ErrMissingWebhookSecret is returned when no signing secret is configured.
var ErrMissingWebhookSecret = errors.New("webhook.secret (WEBHOOK_SECRET) is required")

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds a Config from an already populated viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Webhook ingress
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.SignatureHeader = v.GetString("webhook.signature_header")
	cfg.Webhook.TimestampHeader = v.GetString("webhook.timestamp_header")
	cfg.Webhook.ToleranceSeconds = v.GetInt("webhook.tolerance_seconds")
	cfg.Webhook.MaxBodyBytes = v.GetInt64("webhook.max_body_bytes")

	cfg.RateLimit.RateLimitPerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.AllowedIPs = getList(v, "rate_limit.allowed_ips")

	// Workflow engine
	cfg.Workflow.BaseURL = strings.TrimRight(v.GetString("workflow.base_url"), "/")
	cfg.Workflow.APIKey = v.GetString("workflow.api_key")
	cfg.Workflow.Timeout = v.GetDuration("workflow.timeout")
	cfg.Workflow.OAuth2.ClientID = v.GetString("workflow.oauth2.client_id")
	cfg.Workflow.OAuth2.ClientSecret = v.GetString("workflow.oauth2.client_secret")
	cfg.Workflow.OAuth2.TokenURL = v.GetString("workflow.oauth2.token_url")
	cfg.Workflow.OAuth2.Scopes = getList(v, "workflow.oauth2.scopes")
	cfg.Workflow.Breaker.Enabled = v.GetBool("workflow.breaker.enabled")
	cfg.Workflow.Breaker.MaxFailures = v.GetInt("workflow.breaker.max_failures")
	cfg.Workflow.Breaker.OpenTimeout = v.GetDuration("workflow.breaker.open_timeout")

	// Endpoints
	cfg.Signup.Path = v.GetString("signup.path")
	cfg.Signup.ForwardFailureFatal = v.GetBool("signup.forward_failure_fatal")
	cfg.Approval.Path = v.GetString("approval.path")
	cfg.Approval.ForwardFailureFatal = v.GetBool("approval.forward_failure_fatal")

	cfg.Moderation.Keywords = getList(v, "moderation.keywords")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("webhook.signature_header", "x-signature")
	v.SetDefault("webhook.timestamp_header", "x-timestamp")
	v.SetDefault("webhook.tolerance_seconds", 300)
	v.SetDefault("webhook.max_body_bytes", 1<<20)
	v.SetDefault("rate_limit.per_min", 120)

	v.SetDefault("workflow.timeout", "10s")
	v.SetDefault("workflow.breaker.enabled", true)
	v.SetDefault("workflow.breaker.max_failures", 5)
	v.SetDefault("workflow.breaker.open_timeout", "30s")

	v.SetDefault("signup.path", "/webhook/user-signup")
	v.SetDefault("signup.forward_failure_fatal", false)
	v.SetDefault("approval.path", "/webhook/project-approval")
	v.SetDefault("approval.forward_failure_fatal", true)
}

func (c *Config) validate() error {
	if c.Webhook.Secret == "" {
		return ErrMissingWebhookSecret
	}
	if c.Webhook.ToleranceSeconds < 0 {
		return fmt.Errorf("webhook.tolerance_seconds must be >= 0, got %d", c.Webhook.ToleranceSeconds)
	}
	if c.Workflow.Breaker.MaxFailures < 0 {
		return fmt.Errorf("workflow.breaker.max_failures must be >= 0, got %d", c.Workflow.Breaker.MaxFailures)
	}
	if c.Workflow.BaseURL == "" {
		return fmt.Errorf("workflow.base_url (WORKFLOW_BASE_URL) is required")
	}
	return nil
}

// getList reads key written either as a YAML list or as a comma separated
// string (the env form).
func getList(v *viper.Viper, key string) []string {
	return splitList(strings.Join(v.GetStringSlice(key), ","))
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
