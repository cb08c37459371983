package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/cs-format/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := NewParser(opts...)
	if _, err := p.Write(d); err != nil {
		return nil, err
	}
	return p.Finish()
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses everything r produces.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	p := NewParser(opts...)
	if _, err := p.ReadFrom(r); err != nil {
		return nil, err
	}
	return p.Finish()
}

func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	node, err := ParseReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
