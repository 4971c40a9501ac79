package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanhub-webhooks/config"
	"fanhub-webhooks/internal/middleware"
	"fanhub-webhooks/internal/moderation"
	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/pkg/forwarder"
	"fanhub-webhooks/pkg/log"
	"fanhub-webhooks/pkg/metrics"
)

var testSecret = []byte("test-secret")

type stubPublisher struct{}

func (stubPublisher) Publish(ctx context.Context, path string, event any) forwarder.Result {
	return forwarder.Result{Success: true}
}

func newTestServer(t *testing.T, env string) *HTTPServer {
	t.Helper()

	cfg, err := webhook.NewConfig(testSecret)
	require.NoError(t, err)
	guard, err := webhook.NewGuard(webhook.SecurityConfig{})
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        "test",
		Environment: env,
		Middleware:  middleware.New(log.NewNop(), webhook.NewValidator(cfg), guard, m, 0),
		Metrics:     m,
		Publisher:   stubPublisher{},
		Checker:     moderation.New(nil),
		Signup:      config.EndpointConfig{Path: "/webhook/user-signup"},
		Approval:    config.EndpointConfig{Path: "/webhook/project-approval", ForwardFailureFatal: true},
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test"})
	assert.EqualError(t, err, "port is required")

	_, err = New(log.NewNop(), Config{Mode: "test", Port: 1})
	assert.EqualError(t, err, "workflow publisher is required")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, "development")

	for _, path := range []string{"/api/webhooks/signup", "/api/webhooks/project-approval"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, "development")

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProbes(t *testing.T) {
	srv := newTestServer(t, "staging")

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"`+status+`"`)
		assert.Contains(t, w.Body.String(), `"environment":"staging"`)
	}
}

func TestSignupEndToEnd(t *testing.T) {
	srv := newTestServer(t, "development")

	body := `{"userId":"u1","email":"a@b.com","name":"A"}`
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-timestamp", ts)
	req.Header.Set("x-signature", "sha256="+webhook.Sign(testSecret, []byte(body), ts))

	w := serve(srv, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"forwarded":true`)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	metricsResp := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metricsResp.Code)
	assert.Contains(t, metricsResp.Body.String(), `fanhub_webhooks_signature_validations_total{endpoint="signup",result="valid"} 1`)
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	srv := newTestServer(t, "production")

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
