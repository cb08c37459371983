package ir

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidKind     = errors.New("invalid kind")
	ErrNotBranch       = errors.New("not a branch")
	ErrNotMaterialized = errors.New("raw value is a live source")
	ErrBadIndexPath    = errors.New("bad index path")
)
