package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/middleware"
)

// Endpoint labels the signup webhook in metrics.
const Endpoint = "signup"

// RegisterRoutes mounts the signup webhook. Signature verification runs
// before the handler sees the body.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/signup", mw.VerifySignature(Endpoint), h.Process)
}
