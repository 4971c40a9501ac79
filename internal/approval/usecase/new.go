package usecase

import (
	"time"

	"github.com/google/uuid"

	"fanhub-webhooks/internal/moderation"
	"fanhub-webhooks/internal/workflow"
	"fanhub-webhooks/pkg/log"
	"fanhub-webhooks/pkg/metrics"
)

// implUseCase is the private implementation of approval.UseCase.
type implUseCase struct {
	publisher           workflow.Publisher
	checker             moderation.Checker
	metrics             *metrics.Metrics
	path                string
	forwardFailureFatal bool
	l                   log.Logger

	now   func() time.Time
	newID func() string
}

// New creates a new approval UseCase implementation.
func New(publisher workflow.Publisher, checker moderation.Checker, m *metrics.Metrics, path string, forwardFailureFatal bool, l log.Logger) *implUseCase {
	return &implUseCase{
		publisher:           publisher,
		checker:             checker,
		metrics:             m,
		path:                path,
		forwardFailureFatal: forwardFailureFatal,
		l:                   l,
		now:                 time.Now,
		newID:               uuid.NewString,
	}
}
