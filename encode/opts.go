package encode

import (
	"github.com/signadot/cs-format/format"
	"github.com/signadot/cs-format/ir"
)

const DefaultChunkSize = 32 * 1024

type EncodeOption func(*EncState)

type EncState struct {
	format     format.Format
	nativeBool bool
	chunkSize  int
	indent     int

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		chunkSize: DefaultChunkSize,
		indent:    2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.chunkSize <= 0 {
		es.chunkSize = DefaultChunkSize
	}
	return es
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newEncState(opts).format
}

// NativeBool writes boolean values with the B indicator. By default they are
// written as integers 0 or 1 and read back as integers.
func NativeBool(v bool) EncodeOption {
	return func(es *EncState) { es.nativeBool = v }
}

// ChunkSize bounds the bytes forwarded from a live raw source per call to
// Next.
func ChunkSize(n int) EncodeOption {
	return func(es *EncState) { es.chunkSize = n }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
