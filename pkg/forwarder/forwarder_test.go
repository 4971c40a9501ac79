package forwarder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanhub-webhooks/pkg/forwarder"
)

func TestForward_Success(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"executionId":"exec-1"}`))
	}))
	defer ts.Close()

	f := forwarder.New()
	res := f.Forward(context.Background(), ts.URL, map[string]any{"userId": "u1"}, map[string]string{
		"Authorization": "Bearer api-key",
	})

	require.True(t, res.Success, res.Error)
	assert.Empty(t, res.Error)
	assert.Equal(t, map[string]any{"executionId": "exec-1"}, res.Data)

	assert.Equal(t, "u1", gotBody["userId"])
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, forwarder.UserAgent, gotHeaders.Get("User-Agent"))
	assert.Equal(t, forwarder.SourceName, gotHeaders.Get(forwarder.SourceHeader))
	assert.Equal(t, "Bearer api-key", gotHeaders.Get("Authorization"))
}

func TestForward_CallerHeadersWin(t *testing.T) {
	var gotSource string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSource = r.Header.Get(forwarder.SourceHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	res := forwarder.New().Forward(context.Background(), ts.URL, map[string]any{}, map[string]string{
		forwarder.SourceHeader: "fanhub-signup",
	})

	require.True(t, res.Success)
	assert.Nil(t, res.Data, "empty body yields no data")
	assert.Equal(t, "fanhub-signup", gotSource)
}

func TestForward_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer ts.Close()

	res := forwarder.New().Forward(context.Background(), ts.URL, map[string]any{"a": 1}, nil)

	assert.False(t, res.Success)
	assert.Regexp(t, `500`, res.Error)
	assert.Equal(t, "500 Internal Server Error", res.Error)
	assert.Nil(t, res.Data)
}

func TestForward_ClientError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	res := forwarder.New().Forward(context.Background(), ts.URL, map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "404 Not Found", res.Error)
}

func TestForward_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	res := forwarder.New().Forward(context.Background(), url, map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestForward_InvalidURL(t *testing.T) {
	res := forwarder.New().Forward(context.Background(), "://bad-url", map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to create request")
}

func TestForward_UndecodableResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>ok</html>`))
	}))
	defer ts.Close()

	res := forwarder.New().Forward(context.Background(), ts.URL, map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to decode response")
}

func TestForward_UnmarshalablePayload(t *testing.T) {
	res := forwarder.New().Forward(context.Background(), "http://127.0.0.1:1", map[string]any{"ch": make(chan int)}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to marshal payload")
}

func TestForward_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	f := forwarder.New(forwarder.WithTimeout(50 * time.Millisecond))
	res := f.Forward(context.Background(), ts.URL, map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestForward_BreakerOpens(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	f := forwarder.New(forwarder.WithBreaker(forwarder.BreakerConfig{MaxFailures: 2, OpenTimeout: time.Minute}))

	for i := 0; i < 2; i++ {
		res := f.Forward(context.Background(), ts.URL, map[string]any{}, nil)
		assert.Equal(t, "502 Bad Gateway", res.Error)
	}

	res := f.Forward(context.Background(), ts.URL, map[string]any{}, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "circuit breaker is open", res.Error)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestForward_BreakerIgnoresClientErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	f := forwarder.New(forwarder.WithBreaker(forwarder.BreakerConfig{MaxFailures: 1}))
	for i := 0; i < 3; i++ {
		res := f.Forward(context.Background(), ts.URL, map[string]any{}, nil)
		assert.Equal(t, "422 Unprocessable Entity", res.Error)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestForward_Observer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	var observed []forwarder.Result
	f := forwarder.New(forwarder.WithObserver(func(res forwarder.Result, _ time.Duration) {
		observed = append(observed, res)
	}))

	f.Forward(context.Background(), ts.URL, map[string]any{}, nil)
	require.Len(t, observed, 1)
	assert.True(t, observed[0].Success)
}

func TestForward_RecoversPanics(t *testing.T) {
	// A Marshaler that panics exercises the recover path.
	res := forwarder.New().Forward(context.Background(), "http://127.0.0.1:1", panicMarshaler{}, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "forward panicked")
}

type panicMarshaler struct{}

func (panicMarshaler) MarshalJSON() ([]byte, error) { panic("boom") }
