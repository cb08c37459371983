package token

import (
	"errors"
)

var (
	ErrMalformedRecord         = errors.New("malformed record")
	ErrUnrecognizedValueType   = errors.New("unrecognized value type")
	ErrAttributeLengthMismatch = errors.New("attribute length mismatch")
)
