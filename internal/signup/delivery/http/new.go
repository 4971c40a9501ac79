package http

import (
	"github.com/gin-gonic/gin"

	"fanhub-webhooks/internal/signup"
	"fanhub-webhooks/pkg/log"
)

// Handler is the public interface for the signup HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc signup.UseCase
}

// New creates a new HTTP handler for the signup webhook.
func New(l log.Logger, uc signup.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
