package signup

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrInvalidEmail   = errors.New("invalid email format")
)
