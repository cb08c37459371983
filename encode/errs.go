package encode

import "errors"

var (
	ErrNameTooLong     = errors.New("name too long")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrNonFinite       = errors.New("non-finite float")
	ErrRawLength       = errors.New("raw source length mismatch")
	ErrNotRoot         = errors.New("not a root node")
	ErrNestedRoot      = errors.New("root node inside tree")
)
