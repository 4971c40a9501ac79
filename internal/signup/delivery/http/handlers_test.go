package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanhub-webhooks/internal/middleware"
	"fanhub-webhooks/internal/signup"
	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/internal/workflow"
	"fanhub-webhooks/pkg/log"
)

var testSecret = []byte("test-secret")

type mockUseCase struct {
	output signup.ProcessOutput
	err    error
	got    signup.ProcessInput
	called bool
}

func (m *mockUseCase) Process(ctx context.Context, input signup.ProcessInput) (signup.ProcessOutput, error) {
	m.called = true
	m.got = input
	return m.output, m.err
}

func newTestRouter(t *testing.T, uc signup.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := webhook.NewConfig(testSecret)
	require.NoError(t, err)
	mw := middleware.New(log.NewNop(), webhook.NewValidator(cfg), nil, nil, 0)

	r := gin.New()
	RegisterRoutes(r.Group("/api/webhooks"), New(log.NewNop(), uc), mw)
	return r
}

func signed(body string) *http.Request {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-timestamp", ts)
	req.Header.Set("x-signature", "sha256="+webhook.Sign(testSecret, []byte(body), ts))
	return req
}

func TestProcess_OK(t *testing.T) {
	uc := &mockUseCase{output: signup.ProcessOutput{UserID: "u1", EventID: "e1", Forwarded: true}}
	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signed(`{"userId":"u1","email":"a@b.com","name":"A","tier":"free"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"userId":"u1","eventId":"e1","forwarded":true}}`, w.Body.String())
	assert.Equal(t, signup.ProcessInput{UserID: "u1", Email: "a@b.com", Name: "A", Tier: "free"}, uc.got)
}

func TestProcess_ForwardErrorReported(t *testing.T) {
	uc := &mockUseCase{output: signup.ProcessOutput{UserID: "u1", EventID: "e1", ForwardError: "timeout"}}
	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signed(`{"userId":"u1","email":"a@b.com","name":"A"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"userId":"u1","eventId":"e1","forwarded":false,"forwardError":"timeout"}}`, w.Body.String())
}

func TestProcess_MissingSignature(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/signup", strings.NewReader(`{"userId":"u1","email":"a@b.com","name":"A"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Missing signature"}`, w.Body.String())
	assert.False(t, uc.called)
}

func TestProcess_InvalidPayload(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantErr string
	}{
		"missing name":   {body: `{"userId":"u1","email":"a@b.com"}`, wantErr: "Invalid payload"},
		"malformed json": {body: `{"userId":`, wantErr: "Invalid payload"},
		"bad email":      {body: `{"userId":"u1","email":"not-an-email","name":"A"}`, wantErr: "Invalid email format"},
		"email spaces":   {body: `{"userId":"u1","email":"a b@c.com","name":"A"}`, wantErr: "Invalid email format"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			r := newTestRouter(t, uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, signed(tc.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.wantErr+`"}`, w.Body.String())
			assert.False(t, uc.called)
		})
	}
}

func TestProcess_ForwardFailureFatal(t *testing.T) {
	uc := &mockUseCase{err: &workflow.ForwardError{Reason: "503 Service Unavailable"}}
	r := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, signed(`{"userId":"u1","email":"a@b.com","name":"A"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to forward to workflow","details":"503 Service Unavailable"}`, w.Body.String())
}
