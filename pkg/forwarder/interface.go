package forwarder

import "context"

// IForwarder relays validated events to the workflow engine.
// Implementations are safe for concurrent use and never panic.
type IForwarder interface {
	Forward(ctx context.Context, endpointURL string, payload any, headers map[string]string) Result
}
