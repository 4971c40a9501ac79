package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/approval"
)

// processSubmitReq binds the submission body.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "approval.processSubmitReq: %v", err)
		return req, approval.ErrInvalidPayload
	}
	return req, nil
}
