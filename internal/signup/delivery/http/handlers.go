package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/pkg/response"
)

// Process godoc
// @Summary     Receive a user signup webhook
// @Description Verifies the HMAC signature, validates the signup and forwards it to the workflow engine.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       x-signature header string     true  "sha256=<hex> HMAC of timestamp.body"
// @Param       x-timestamp header string     false "Unix seconds"
// @Param       body        body   processReq true  "Signup payload"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Invalid payload or email"
// @Failure     401 {object} response.Resp "Missing or invalid signature"
// @Failure     405 {object} response.Resp "Method not allowed"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Failed to forward to workflow"
// @Router      /api/webhooks/signup [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		h.l.Warnf(ctx, "signup.Process: rejected payload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}
