package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/approval"
	"fanhub-webhooks/pkg/log"
)

// Handler is the public interface for the project approval HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc approval.UseCase
}

// New creates a new HTTP handler for the project approval webhook.
func New(l log.Logger, uc approval.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
