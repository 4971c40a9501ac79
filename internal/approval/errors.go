package approval

import "errors"

var ErrInvalidPayload = errors.New("invalid payload")
