package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/cs-format/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrMalformedRecord         = token.ErrMalformedRecord
	ErrUnrecognizedValueType   = token.ErrUnrecognizedValueType
	ErrAttributeLengthMismatch = token.ErrAttributeLengthMismatch

	ErrDuplicateRoot        = errors.New("duplicate root")
	ErrValueWithoutRoot     = errors.New("value without root")
	ErrAttributeWithoutRoot = errors.New("attribute without root")
	ErrBranchWithoutRoot    = errors.New("branch without root")
	ErrMissingRoot          = errors.New("missing root")
	ErrIncompleteStream     = errors.New("incomplete stream")
	ErrFinished             = errors.New("parser already finished")
)

// Error is a parse failure at a byte offset of the input stream. It
// matches ErrParse as well as the error it wraps.
type Error struct {
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrParse }
