package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/cs-format/ir"
)

// View writes an indented listing of the tree, one node per line.
// Attributes are prefixed with '@'.
//
//	command <Root>
//	  cmd_desc <Branch>
//	    id <Int> = 1234
func View(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	paint := es.Color
	if paint == nil {
		paint = func(_ ir.Type, _ ColorAttr, s string) string { return s }
	}
	pad := strings.Repeat(" ", es.indent)
	return node.Walk(func(n *ir.Node, depth int) error {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(pad, depth))
		name := n.Name
		if n.Type.IsAttr() {
			name = "@" + name
		}
		sb.WriteString(paint(n.Type, FieldColor, name))
		sb.WriteByte(' ')
		sb.WriteString(paint(n.Type, TagColor, "<"+n.Type.String()+">"))
		if n.Type.IsLeaf() {
			sb.WriteString(paint(n.Type, SepColor, " = "))
			sb.WriteString(paint(n.Type, ValueColor, viewValue(n)))
		}
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func viewValue(n *ir.Node) string {
	switch n.Type {
	case ir.TextType, ir.AttrTextType:
		return strconv.Quote(n.String)
	case ir.RawType:
		if n.Source != nil {
			return fmt.Sprintf("<%d bytes from source>", n.Source.Len)
		}
		if len(n.Bytes) > 64 {
			return fmt.Sprintf("%q... (%d bytes)", n.Bytes[:64], len(n.Bytes))
		}
		return fmt.Sprintf("%q", n.Bytes)
	}
	return ir.DictValue(n)
}
