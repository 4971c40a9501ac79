package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/pkg/response"
)

// Submit godoc
// @Summary     Receive a project approval webhook
// @Description Verifies the HMAC signature, runs the content safety pass and forwards clean submissions to the workflow engine.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       x-signature header string    true  "sha256=<hex> HMAC of timestamp.body"
// @Param       x-timestamp header string    false "Unix seconds"
// @Param       body        body   submitReq true  "Project submission"
// @Success     200 {object} submitResp
// @Success     202 {object} flaggedResp "Flagged by the safety check, not forwarded"
// @Failure     400 {object} response.Resp "Invalid payload"
// @Failure     401 {object} response.Resp "Missing or invalid signature"
// @Failure     405 {object} response.Resp "Method not allowed"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Failed to forward to workflow"
// @Router      /api/webhooks/project-approval [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		h.l.Warnf(ctx, "approval.Submit: rejected payload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if output.Flagged() {
		response.Accepted(c, h.newFlaggedResp(output))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}
