package usecase

import (
	"context"

	"fanhub-webhooks/internal/model"
	"fanhub-webhooks/internal/signup"
	"fanhub-webhooks/internal/workflow"
)

// Process enriches the signup and forwards it. A forward failure only fails
// the request when the endpoint is configured to treat it as fatal.
func (uc *implUseCase) Process(ctx context.Context, input signup.ProcessInput) (signup.ProcessOutput, error) {
	event := signup.Event{
		Envelope: model.Envelope{
			Event:       model.EventUserSignup,
			EventID:     uc.newID(),
			Source:      model.SourceSignup,
			ProcessedAt: uc.now().UTC(),
		},
		UserID:       input.UserID,
		Email:        input.Email,
		Name:         input.Name,
		ReferralCode: input.ReferralCode,
		Tier:         input.Tier,
	}

	output := signup.ProcessOutput{
		UserID:  input.UserID,
		EventID: event.EventID,
	}

	res := uc.publisher.Publish(ctx, uc.path, event)
	if !res.Success {
		if uc.forwardFailureFatal {
			uc.l.Errorf(ctx, "uc.Process Publish: user %s: %s", input.UserID, res.Error)
			return signup.ProcessOutput{}, &workflow.ForwardError{Reason: res.Error}
		}
		uc.l.Warnf(ctx, "uc.Process: forwarding signup for %s failed, continuing: %s", input.UserID, res.Error)
		output.ForwardError = res.Error
		return output, nil
	}

	output.Forwarded = true
	uc.l.Infof(ctx, "uc.Process: signup %s forwarded as event %s", input.UserID, event.EventID)
	return output, nil
}
