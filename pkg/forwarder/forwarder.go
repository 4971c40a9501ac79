package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Forward serialises payload once and POSTs it to endpointURL. Caller headers
// are applied after the defaults and win on conflict. Every failure, including
// panics, is returned as an unsuccessful Result.
func (f *Forwarder) Forward(ctx context.Context, endpointURL string, payload any, headers map[string]string) (result Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, Error: fmt.Sprintf("forward panicked: %v", r)}
		}
		if f.observer != nil {
			f.observer(result, time.Since(start))
		}
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return failure(fmt.Errorf("failed to marshal payload: %w", err))
	}

	call := func() (interface{}, error) {
		return f.post(ctx, endpointURL, body, headers)
	}

	var data interface{}
	if f.breaker != nil {
		data, err = f.breaker.Execute(call)
	} else {
		data, err = call()
	}
	if err != nil {
		return failure(err)
	}

	return Result{Success: true, Data: data}
}

func (f *Forwarder) post(ctx context.Context, endpointURL string, body []byte, headers map[string]string) (any, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)
	httpReq.Header.Set(SourceHeader, SourceName)
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

func failure(err error) Result {
	msg := unknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Result{Success: false, Error: msg}
}
