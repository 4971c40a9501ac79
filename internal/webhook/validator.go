package webhook

import (
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// ValidateWebhook decides whether rawBody and headers form an authentic,
// fresh request. rawBody must be the exact bytes that were signed.
// It never panics; unexpected failures are reported as an invalid result.
func (v *Validator) ValidateWebhook(rawBody []byte, headers http.Header) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ValidationResult{Valid: false, Error: ReasonVerificationFailed}
		}
	}()

	signature, ok := lookupHeader(headers, v.cfg.signatureHeader)
	if !ok || signature == "" {
		return ValidationResult{Valid: false, Error: ReasonMissingSignature}
	}
	timestamp, _ := lookupHeader(headers, v.cfg.timestampHeader)

	signature = strings.TrimPrefix(signature, SignaturePrefix)

	expected := v.GenerateSignature(rawBody, timestamp)
	if !timingSafeEqual(signature, expected) {
		return ValidationResult{Valid: false, Error: ReasonInvalidSignature}
	}

	if timestamp != "" && v.cfg.toleranceSeconds > 0 && !v.fresh(timestamp) {
		return ValidationResult{Valid: false, Error: ReasonInvalidSignature}
	}

	return ValidationResult{Valid: true}
}

// fresh reports whether timestamp lies within the tolerance window around now.
// The boundary is inclusive.
func (v *Validator) fresh(timestamp string) bool {
	ts, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return false
	}

	skew := v.now().Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	return skew <= int64(v.cfg.toleranceSeconds)
}

// lookupHeader finds name case-insensitively and returns its first value.
func lookupHeader(headers http.Header, name string) (string, bool) {
	if headers == nil {
		return "", false
	}

	candidates := []string{name, textproto.CanonicalMIMEHeaderKey(name), strings.ToLower(name)}
	for _, key := range candidates {
		if values, ok := headers[key]; ok && len(values) > 0 {
			return values[0], true
		}
	}

	for key, values := range headers {
		if strings.EqualFold(key, name) && len(values) > 0 {
			return values[0], true
		}
	}

	return "", false
}
