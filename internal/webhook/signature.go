package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload under secret.
// When timestamp is non-empty the signed material is timestamp + "." + payload.
func Sign(secret, payload []byte, timestamp string) string {
	mac := hmac.New(sha256.New, secret)
	if timestamp != "" {
		mac.Write([]byte(timestamp))
		mac.Write([]byte("."))
	}
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateSignature signs payload with the validator's secret.
func (v *Validator) GenerateSignature(payload []byte, timestamp string) string {
	return Sign(v.cfg.secret, payload, timestamp)
}

// timingSafeEqual reports whether a and b are equal. Strings of different
// length are unequal immediately; otherwise every byte is XORed and the
// differences ORed together, so the running time does not depend on where
// the inputs first differ.
func timingSafeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
