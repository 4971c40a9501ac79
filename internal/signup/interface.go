package signup

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process enriches a verified signup and forwards it to the workflow engine.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
