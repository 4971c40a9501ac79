package forwarder

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

// OAuth2Config holds client-credentials settings for workflow engines that
// require a token instead of a static API key.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Enabled reports whether enough is configured to fetch tokens.
func (c OAuth2Config) Enabled() bool {
	return c.TokenURL != "" && c.ClientID != ""
}

// NewOAuth2Client returns an HTTP client that attaches and refreshes bearer
// tokens. ctx controls token fetches for the lifetime of the client.
func NewOAuth2Client(ctx context.Context, cfg OAuth2Config) *http.Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	return cc.Client(ctx)
}
