package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/middleware"
)

// Endpoint labels the project approval webhook in metrics.
const Endpoint = "project-approval"

// RegisterRoutes mounts the project approval webhook behind signature verification.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/project-approval", mw.VerifySignature(Endpoint), h.Submit)
}
