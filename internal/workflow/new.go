package workflow

import (
	"fanhub-webhooks/pkg/forwarder"
	pkgLog "fanhub-webhooks/pkg/log"
)

type publisher struct {
	fwd     forwarder.IForwarder
	baseURL string
	apiKey  string
	l       pkgLog.Logger
}

// New creates a Publisher for the workflow engine at baseURL. apiKey, when
// set, is sent as a bearer token.
func New(fwd forwarder.IForwarder, baseURL, apiKey string, l pkgLog.Logger) Publisher {
	return &publisher{
		fwd:     fwd,
		baseURL: baseURL,
		apiKey:  apiKey,
		l:       l,
	}
}
