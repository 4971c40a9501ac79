package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"fanhub-webhooks/pkg/response"
)

const (
	ServiceName    = "fanhub-webhooks"
	ServiceVersion = "1.0.0"
)

var startedAt = time.Now()

type probeResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, probeResp{
			Status:      status,
			Service:     ServiceName,
			Version:     ServiceVersion,
			Environment: srv.environment,
			Uptime:      time.Since(startedAt).Truncate(time.Second).String(),
		})
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe("healthy")(c) }

// readyCheck reports readiness. No upstream is probed; the workflow engine is
// only contacted per request.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe("ready")(c) }

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe("alive")(c) }
