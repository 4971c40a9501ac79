package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fanhub-webhooks/config"
	"fanhub-webhooks/internal/middleware"
	"fanhub-webhooks/internal/moderation"
	"fanhub-webhooks/internal/workflow"
	"fanhub-webhooks/pkg/log"
	"fanhub-webhooks/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	mw        middleware.Middleware
	metrics   *metrics.Metrics
	publisher workflow.Publisher
	checker   moderation.Checker

	// Endpoint policies
	signup   config.EndpointConfig
	approval config.EndpointConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Metrics    *metrics.Metrics
	Publisher  workflow.Publisher
	Checker    moderation.Checker

	Signup   config.EndpointConfig
	Approval config.EndpointConfig
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		metrics:     cfg.Metrics,
		publisher:   cfg.Publisher,
		checker:     cfg.Checker,
		signup:      cfg.Signup,
		approval:    cfg.Approval,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.publisher == nil {
		return errors.New("workflow publisher is required")
	}
	if srv.checker == nil {
		return errors.New("moderation checker is required")
	}
	return nil
}
