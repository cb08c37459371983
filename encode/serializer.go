package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/cs-format/debug"
	"github.com/signadot/cs-format/ir"
)

// Serializer produces the CS records of a tree in pre-order, one record per
// call to Next. The tree must not be mutated until the serializer is done.
type Serializer struct {
	root    *ir.Node
	es      *EncState
	stack   []frame
	started bool
	buf     []byte
	err     error

	// active live raw source
	src       *ir.RawSource
	srcName   string
	remaining int64
	chunk     []byte
}

type frame struct {
	node *ir.Node
	i    int
}

func (f *frame) len() int {
	return len(f.node.Attrs) + len(f.node.Children)
}

func (f *frame) entry() *ir.Node {
	if f.i < len(f.node.Attrs) {
		return f.node.Attrs[f.i]
	}
	return f.node.Children[f.i-len(f.node.Attrs)]
}

func NewSerializer(root *ir.Node, opts ...EncodeOption) *Serializer {
	return &Serializer{root: root, es: newEncState(opts)}
}

// Next returns the next record, or io.EOF after the root has been closed.
//
// While a live raw source is being forwarded, each call instead returns at
// most ChunkSize bytes read from the source; the record's trailing newline
// accompanies the last of them. An empty, non-nil slice means the source had
// nothing available yet.
//
// The returned slice is only valid until the next call. Errors are
// terminal: once Next fails it keeps returning the same error.
func (s *Serializer) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec, err := s.next()
	if err != nil && err != io.EOF {
		s.err = err
		return nil, err
	}
	if err == io.EOF {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encode: %q\n", rec)
	}
	return rec, nil
}

func (s *Serializer) next() ([]byte, error) {
	if s.src != nil {
		return s.forward()
	}
	if !s.started {
		s.started = true
		if s.root == nil || s.root.Type != ir.RootType {
			return nil, ErrNotRoot
		}
		s.stack = append(s.stack, frame{node: s.root})
		return s.record(AppendOpen(s.buf[:0], s.root))
	}
	if len(s.stack) == 0 {
		return nil, io.EOF
	}
	top := &s.stack[len(s.stack)-1]
	if top.i == top.len() {
		s.stack = s.stack[:len(s.stack)-1]
		s.buf = AppendClose(s.buf[:0], top.node)
		return s.buf, nil
	}
	e := top.entry()
	top.i++
	switch {
	case e.Type == ir.RootType:
		return nil, fmt.Errorf("%w: %q", ErrNestedRoot, e.Name)
	case e.Type == ir.BranchType:
		s.stack = append(s.stack, frame{node: e})
		return s.record(AppendOpen(s.buf[:0], e))
	case e.Type == ir.RawType && e.Source != nil:
		return s.startSource(e)
	}
	return s.record(appendScalar(s.buf[:0], e, s.es))
}

func (s *Serializer) record(d []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	s.buf = d
	return d, nil
}

func (s *Serializer) startSource(e *ir.Node) ([]byte, error) {
	d, err := AppendRawHeader(s.buf[:0], e.Name, e.Source.Len)
	if err != nil {
		return nil, err
	}
	if e.Source.Len == 0 {
		s.buf = append(d, '\n')
		return s.buf, nil
	}
	s.buf = d
	s.src = e.Source
	s.srcName = e.Name
	s.remaining = e.Source.Len
	return s.buf, nil
}

func (s *Serializer) forward() ([]byte, error) {
	if s.chunk == nil {
		s.chunk = make([]byte, s.es.chunkSize+1)
	}
	want := int64(s.es.chunkSize)
	if s.remaining < want {
		want = s.remaining
	}
	n, err := s.src.R.Read(s.chunk[:want])
	s.remaining -= int64(n)
	if s.remaining == 0 {
		s.src = nil
		return append(s.chunk[:n], '\n'), nil
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %q ended %d bytes short", ErrRawLength, s.srcName, s.remaining)
	}
	if err != nil {
		return nil, fmt.Errorf("reading raw source %q: %w", s.srcName, err)
	}
	return s.chunk[:n], nil
}

// WriteTo drains the serializer into w.
func (s *Serializer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	empty := 0
	for {
		rec, err := s.Next()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if len(rec) == 0 {
			empty++
			if empty >= maxConsecutiveEmpty {
				s.err = io.ErrNoProgress
				return total, s.err
			}
			continue
		}
		empty = 0
		n, err := w.Write(rec)
		total += int64(n)
		if err != nil {
			s.err = err
			return total, err
		}
	}
}

const maxConsecutiveEmpty = 100

type reader struct {
	s       *Serializer
	pending []byte
}

// NewReader returns an io.Reader over the CS bytes of root.
func NewReader(root *ir.Node, opts ...EncodeOption) io.Reader {
	return &reader{s: NewSerializer(root, opts...)}
}

func (r *reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	empty := 0
	for len(r.pending) == 0 {
		rec, err := r.s.Next()
		if err != nil {
			return 0, err
		}
		if len(rec) == 0 {
			empty++
			if empty >= maxConsecutiveEmpty {
				return 0, io.ErrNoProgress
			}
		}
		r.pending = rec
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
