package workflow

import (
	"context"
	"strings"

	"fanhub-webhooks/pkg/forwarder"
)

// Publish forwards event to path and logs the outcome.
func (p *publisher) Publish(ctx context.Context, path string, event any) forwarder.Result {
	headers := map[string]string{}
	if p.apiKey != "" {
		headers["Authorization"] = "Bearer " + p.apiKey
	}

	url := p.endpointURL(path)
	res := p.fwd.Forward(ctx, url, event, headers)
	if res.Success {
		p.l.Debugf(ctx, "workflow: forwarded event to %s", url)
	} else {
		p.l.Warnf(ctx, "workflow: forward to %s failed: %s", url, res.Error)
	}
	return res
}

func (p *publisher) endpointURL(path string) string {
	base := strings.TrimRight(p.baseURL, "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
