package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/cs-format/debug"
	"github.com/signadot/cs-format/ir"
	"github.com/signadot/cs-format/token"
)

// Parser builds a tree from CS bytes delivered in chunks of any size.
//
// Each call to Write appends a chunk and applies every record which is now
// complete; a record split across chunks is applied once its last byte
// arrives. Write never blocks. Finish ends the input and returns the tree.
//
// Errors are terminal: once any call fails, every later call returns the
// same error.
type Parser struct {
	opts *parseOpts

	buf   []byte
	start int   // consumed prefix of buf
	off   int64 // stream offset of buf[start]

	root    *ir.Node
	stack   []*ir.Node
	closed  bool
	records int

	finished bool
	err      error
}

func NewParser(opts ...ParseOption) *Parser {
	return &Parser{opts: newParseOpts(opts)}
}

// Write implements io.Writer.
func (p *Parser) Write(d []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if p.finished {
		return 0, ErrFinished
	}
	p.buf = append(p.buf, d...)
	if err := p.drain(); err != nil {
		p.err = err
		return len(d), err
	}
	return len(d), nil
}

// ReadFrom implements io.ReaderFrom. It feeds r to the parser until io.EOF
// but does not call Finish.
func (p *Parser) ReadFrom(r io.Reader) (int64, error) {
	chunk := make([]byte, p.opts.readSize)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += int64(n)
			if _, werr := p.Write(chunk[:n]); werr != nil {
				return total, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Finish signals the end of input and returns the completed tree.
func (p *Parser) Finish() (*ir.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.finished = true
	switch {
	case p.root == nil:
		p.err = &Error{Offset: p.off, Err: ErrMissingRoot}
	case len(p.stack) != 0:
		p.err = &Error{Offset: p.off, Err: fmt.Errorf("%w: %d open at end of input", ErrIncompleteStream, len(p.stack))}
	case p.start < len(p.buf):
		p.err = &Error{Offset: p.off, Err: fmt.Errorf("%w: %d trailing bytes", ErrMalformedRecord, len(p.buf)-p.start)}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.root, nil
}

// Root returns the tree built so far, nil before the root record.
func (p *Parser) Root() *ir.Node { return p.root }

// Records returns the number of records applied.
func (p *Parser) Records() int { return p.records }

// Offset returns the stream offset of the first byte not yet consumed.
func (p *Parser) Offset() int64 { return p.off }

// Done reports whether the root has been closed.
func (p *Parser) Done() bool { return p.closed }

func (p *Parser) drain() error {
	for {
		rec, n, err := token.Scan(p.buf[p.start:])
		if err != nil {
			return &Error{Offset: p.off, Err: err}
		}
		if n == 0 {
			break
		}
		if debug.Parse() {
			debug.Logf("parse %d: %s\n", p.off, &rec)
		}
		if err := p.apply(&rec); err != nil {
			return &Error{Offset: p.off, Err: err}
		}
		p.start += n
		p.off += int64(n)
		p.records++
	}
	p.compact()
	return nil
}

// compact drops consumed bytes once they make up more than half the buffer.
func (p *Parser) compact() {
	if p.start == len(p.buf) {
		p.buf = p.buf[:0]
		p.start = 0
		return
	}
	if p.start > len(p.buf)/2 {
		n := copy(p.buf, p.buf[p.start:])
		p.buf = p.buf[:n]
		p.start = 0
	}
}

func (p *Parser) top() *ir.Node {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) apply(rec *token.Record) error {
	switch rec.Marker {
	case token.MRootOpen:
		if p.root != nil {
			return fmt.Errorf("%w: %q after %q", ErrDuplicateRoot, rec.Name, p.root.Name)
		}
		p.root = ir.NewRoot(rec.Name)
		p.stack = append(p.stack, p.root)
		p.track(p.root)
		return nil

	case token.MRootClose:
		if len(p.stack) == 0 {
			return fmt.Errorf("%w: root close with no open root", ErrMalformedRecord)
		}
		if t := p.top(); t.Type != ir.RootType {
			return fmt.Errorf("%w: root close inside branch %q", ErrMalformedRecord, t.Name)
		}
		p.stack = p.stack[:0]
		p.closed = true
		return nil

	case token.MBranchClose:
		if len(p.stack) == 0 {
			return fmt.Errorf("%w: branch close with no open branch", ErrMalformedRecord)
		}
		if t := p.top(); t.Type != ir.BranchType {
			return fmt.Errorf("%w: branch close at root %q", ErrMalformedRecord, t.Name)
		}
		p.stack = p.stack[:len(p.stack)-1]
		return nil
	}

	if err := p.checkOpen(rec); err != nil {
		return err
	}
	parent := p.top()
	switch rec.Marker {
	case token.MBranchOpen:
		b := parent.AddBranch(rec.Name)
		p.stack = append(p.stack, b)
		p.track(b)
		return nil
	case token.MValue:
		n, err := p.addValue(parent, rec)
		if err != nil {
			return err
		}
		p.track(n)
		return nil
	case token.MAttr:
		n, err := addAttr(parent, rec)
		if err != nil {
			return err
		}
		p.track(n)
		return nil
	}
	return fmt.Errorf("%w: unexpected %s", ErrMalformedRecord, rec.Marker)
}

// checkOpen reports why a branch, value or attribute record has nowhere to
// go.
func (p *Parser) checkOpen(rec *token.Record) error {
	if p.root == nil {
		switch rec.Marker {
		case token.MBranchOpen:
			return fmt.Errorf("%w: %q", ErrBranchWithoutRoot, rec.Name)
		case token.MAttr:
			return fmt.Errorf("%w: %q", ErrAttributeWithoutRoot, rec.Name)
		default:
			return fmt.Errorf("%w: %q", ErrValueWithoutRoot, rec.Name)
		}
	}
	if p.closed {
		return fmt.Errorf("%w: %s %q after root %q closed", ErrMalformedRecord, rec.Marker, rec.Name, p.root.Name)
	}
	return nil
}

func (p *Parser) track(n *ir.Node) {
	if p.opts.offsets != nil {
		p.opts.offsets[n] = p.off
	}
}

func (p *Parser) addValue(parent *ir.Node, rec *token.Record) (*ir.Node, error) {
	switch rec.Indicator {
	case token.IInt:
		v, err := token.ParseInt(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddInt(rec.Name, v), nil
	case token.IInt64:
		v, err := token.ParseInt(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddInt64(rec.Name, v), nil
	case token.IFloat:
		v, err := token.ParseFloat(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddFloat(rec.Name, v), nil
	case token.IBool:
		v, err := token.ParseBool(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddBool(rec.Name, v), nil
	case token.ITimestamp:
		v, err := token.ParseTimestamp(rec.Payload, p.opts.now())
		if err != nil {
			return nil, err
		}
		return parent.AddTimestamp(rec.Name, v), nil
	case token.IText:
		return parent.AddText(rec.Name, string(rec.Payload)), nil
	case token.IRaw:
		return parent.AddRaw(rec.Name, append([]byte{}, rec.Payload...)), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedValueType, rec.Indicator)
}

func addAttr(parent *ir.Node, rec *token.Record) (*ir.Node, error) {
	switch rec.Indicator {
	case token.IInt:
		v, err := token.ParseInt(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddAttrInt(rec.Name, v), nil
	case token.IInt64:
		v, err := token.ParseInt(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddAttrInt64(rec.Name, v), nil
	case token.IFloat:
		v, err := token.ParseFloat(rec.Payload)
		if err != nil {
			return nil, err
		}
		return parent.AddAttrFloat(rec.Name, v), nil
	case token.IText:
		return parent.AddAttrText(rec.Name, string(rec.Payload)), nil
	}
	return nil, fmt.Errorf("%w: %s attribute", ErrUnrecognizedValueType, rec.Indicator)
}
