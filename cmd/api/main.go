package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fanhub-webhooks/config"
	_ "fanhub-webhooks/docs" // Swagger docs
	"fanhub-webhooks/internal/httpserver"
	"fanhub-webhooks/internal/middleware"
	"fanhub-webhooks/internal/moderation"
	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/internal/workflow"
	"fanhub-webhooks/pkg/forwarder"
	"fanhub-webhooks/pkg/log"
	"fanhub-webhooks/pkg/metrics"
)

// @title       FanHub Webhooks API
// @description HMAC-verified webhook ingress that forwards FanHub events to the workflow engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FanHub webhooks...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Workflow engine: %s", cfg.Workflow.BaseURL)

	// 3. Signature validation and request guard
	webhookCfg, err := webhook.NewConfig([]byte(cfg.Webhook.Secret),
		webhook.WithSignatureHeader(cfg.Webhook.SignatureHeader),
		webhook.WithTimestampHeader(cfg.Webhook.TimestampHeader),
		webhook.WithTolerance(cfg.Webhook.ToleranceSeconds),
	)
	if err != nil {
		logger.Fatalf(ctx, "Invalid webhook configuration: %v", err)
	}
	validator := webhook.NewValidator(webhookCfg)

	guard, err := webhook.NewGuard(webhook.SecurityConfig{
		AllowedIPs:      cfg.RateLimit.AllowedIPs,
		RateLimitPerMin: cfg.RateLimit.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Invalid rate limit configuration: %v", err)
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 5. Forwarder and workflow publisher
	fwdOpts := []forwarder.Option{
		forwarder.WithTimeout(cfg.Workflow.Timeout),
		forwarder.WithObserver(func(res forwarder.Result, elapsed time.Duration) {
			m.ObserveForward(res.Success, elapsed)
		}),
	}

	oauthCfg := forwarder.OAuth2Config{
		ClientID:     cfg.Workflow.OAuth2.ClientID,
		ClientSecret: cfg.Workflow.OAuth2.ClientSecret,
		TokenURL:     cfg.Workflow.OAuth2.TokenURL,
		Scopes:       cfg.Workflow.OAuth2.Scopes,
	}
	if oauthCfg.Enabled() {
		fwdOpts = append(fwdOpts, forwarder.WithHTTPClient(forwarder.NewOAuth2Client(ctx, oauthCfg)))
		logger.Info(ctx, "Workflow OAuth2 client credentials enabled")
	}

	if cfg.Workflow.Breaker.Enabled {
		fwdOpts = append(fwdOpts, forwarder.WithBreaker(forwarder.BreakerConfig{
			Name:        "workflow",
			MaxFailures: uint32(cfg.Workflow.Breaker.MaxFailures),
			OpenTimeout: cfg.Workflow.Breaker.OpenTimeout,
		}))
	}

	publisher := workflow.New(forwarder.New(fwdOpts...), cfg.Workflow.BaseURL, cfg.Workflow.APIKey, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, validator, guard, m, cfg.Webhook.MaxBodyBytes),
		Metrics:     m,
		Publisher:   publisher,
		Checker:     moderation.New(cfg.Moderation.Keywords),
		Signup:      cfg.Signup,
		Approval:    cfg.Approval,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
