package workflow

import (
	"context"

	"fanhub-webhooks/pkg/forwarder"
)

// Publisher sends enriched events to a path on the workflow engine.
type Publisher interface {
	Publish(ctx context.Context, path string, event any) forwarder.Result
}
