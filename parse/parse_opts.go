package parse

import (
	"time"

	"github.com/signadot/cs-format/ir"
)

const DefaultReadSize = 32 * 1024

type parseOpts struct {
	now      func() time.Time
	readSize int
	offsets  map[*ir.Node]int64
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{now: time.Now, readSize: DefaultReadSize}
	for _, f := range opts {
		f(o)
	}
	if o.readSize <= 0 {
		o.readSize = DefaultReadSize
	}
	return o
}

type ParseOption func(*parseOpts)

// WithClock sets the clock used to reject implausible timestamps.
func WithClock(now func() time.Time) ParseOption {
	return func(o *parseOpts) { o.now = now }
}

// ReadSize sets the chunk size used when parsing from an io.Reader.
func ReadSize(n int) ParseOption {
	return func(o *parseOpts) { o.readSize = n }
}

// RecordOffsets populates m with the stream offset of the record which
// created each node.
func RecordOffsets(m map[*ir.Node]int64) ParseOption {
	return func(o *parseOpts) { o.offsets = m }
}
