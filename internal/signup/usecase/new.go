package usecase

import (
	"time"

	"github.com/google/uuid"

	"fanhub-webhooks/internal/workflow"
	"fanhub-webhooks/pkg/log"
)

// implUseCase is the private implementation of signup.UseCase.
type implUseCase struct {
	publisher           workflow.Publisher
	path                string
	forwardFailureFatal bool
	l                   log.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new signup UseCase implementation. forwardFailureFatal
// decides whether a failed forward fails the inbound request.
func New(publisher workflow.Publisher, path string, forwardFailureFatal bool, l log.Logger) *implUseCase {
	return &implUseCase{
		publisher:           publisher,
		path:                path,
		forwardFailureFatal: forwardFailureFatal,
		l:                   l,
		now:                 time.Now,
		newID:               uuid.NewString,
	}
}
