package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/signup"
)

// processProcessReq binds the signup body. Bind failures collapse into
// ErrInvalidPayload so binding internals never reach the client.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "signup.processProcessReq: %v", err)
		return req, signup.ErrInvalidPayload
	}
	return req, req.validate()
}
