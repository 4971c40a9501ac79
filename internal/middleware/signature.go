package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/pkg/metrics"
	"fanhub-webhooks/pkg/response"
)

// RawBodyKey is the gin context key holding the verified request body.
const RawBodyKey = "webhook.raw_body"

const (
	messageMissingSignature = "Missing signature"
	messageInvalidSignature = "Invalid signature"
	messageBodyTooLarge     = "Payload too large"
	messageUnreadableBody   = "Invalid payload"
)

// VerifySignature reads the raw body and checks its HMAC signature before
// any binding happens. The body is restored so handlers can bind it.
func (m Middleware) VerifySignature(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				m.l.Warnf(ctx, "middleware.VerifySignature: %s body exceeds %d bytes", endpoint, m.maxBodyBytes)
				response.Fail(c, http.StatusRequestEntityTooLarge, messageBodyTooLarge)
				return
			}
			m.l.Warnf(ctx, "middleware.VerifySignature: read body: %v", err)
			response.Fail(c, http.StatusBadRequest, messageUnreadableBody)
			return
		}

		result := m.validator.ValidateWebhook(body, c.Request.Header)
		if !result.Valid {
			if result.Error == webhook.ReasonMissingSignature {
				m.metrics.ObserveValidation(endpoint, metrics.ResultMissing)
				m.l.Warnf(ctx, "middleware.VerifySignature: %s: %s", endpoint, result.Error)
				response.Unauthorized(c, messageMissingSignature)
				return
			}
			m.metrics.ObserveValidation(endpoint, metrics.ResultInvalid)
			m.l.Warnf(ctx, "middleware.VerifySignature: %s: %s", endpoint, result.Error)
			response.Unauthorized(c, messageInvalidSignature)
			return
		}

		m.metrics.ObserveValidation(endpoint, metrics.ResultValid)
		c.Set(RawBodyKey, body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}
