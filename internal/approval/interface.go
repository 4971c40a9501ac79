package approval

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit runs the safety pass on a verified submission and, when it is
	// clean, forwards the enriched event to the workflow engine.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
}
