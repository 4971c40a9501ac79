package usecase

import (
	"context"
	"strings"

	"fanhub-webhooks/internal/approval"
	"fanhub-webhooks/internal/model"
	"fanhub-webhooks/internal/moderation"
	"fanhub-webhooks/internal/workflow"
)

// Submit flags unsafe submissions without forwarding them. Clean ones are
// enriched with priority and moderation hints and forwarded.
func (uc *implUseCase) Submit(ctx context.Context, input approval.SubmitInput) (approval.SubmitOutput, error) {
	category := strings.ToLower(strings.TrimSpace(input.Category))

	check := uc.checker.Check(moderation.Content{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Tags:        input.Tags,
		FileSize:    input.FileSize,
		Metadata:    input.Metadata,
	})

	if !check.Safe {
		uc.metrics.ObserveFlagged(category)
		uc.l.Warnf(ctx, "uc.Submit: project %s flagged: terms=%v reasons=%v", input.ProjectID, check.FlaggedTerms, check.Reasons)
		return approval.SubmitOutput{
			Status:      approval.StatusFlagged,
			ProjectID:   input.ProjectID,
			SafetyCheck: check,
		}, nil
	}

	event := approval.Event{
		Envelope: model.Envelope{
			Event:       model.EventProjectSubmitted,
			EventID:     uc.newID(),
			Source:      model.SourceProjectApproval,
			ProcessedAt: uc.now().UTC(),
		},
		ProjectID:          input.ProjectID,
		CreatorID:          input.CreatorID,
		Title:              input.Title,
		Category:           category,
		Description:        input.Description,
		Tags:               input.Tags,
		FileSize:           input.FileSize,
		CreatorTier:        input.CreatorTier,
		Metadata:           input.Metadata,
		Priority:           model.PriorityFor(input.CreatorTier),
		RequiresModeration: check.RequiresReview,
		SafetyCheck:        check,
	}

	res := uc.publisher.Publish(ctx, uc.path, event)
	if !res.Success {
		if uc.forwardFailureFatal {
			uc.l.Errorf(ctx, "uc.Submit Publish: project %s: %s", input.ProjectID, res.Error)
			return approval.SubmitOutput{}, &workflow.ForwardError{Reason: res.Error}
		}
		uc.l.Warnf(ctx, "uc.Submit: forwarding project %s failed, continuing: %s", input.ProjectID, res.Error)
	}

	uc.l.Infof(ctx, "uc.Submit: project %s submitted as event %s priority=%s", input.ProjectID, event.EventID, event.Priority)
	return approval.SubmitOutput{
		Status:             approval.StatusSubmitted,
		ProjectID:          input.ProjectID,
		EventID:            event.EventID,
		Priority:           event.Priority,
		RequiresModeration: event.RequiresModeration,
		SafetyCheck:        check,
		Workflow:           res.Data,
	}, nil
}
