package libdiff

import (
	"fmt"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cs-format/ir"
)

type Op int

const (
	Delete Op = iota
	Insert
	Replace
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<op %d>", int(o))
}

// Change is one difference between two trees. FromPath addresses From in
// the old tree and ToPath addresses To in the new one; a Delete has no To
// and an Insert has no From.
type Change struct {
	Op       Op
	FromPath ir.IndexPath
	ToPath   ir.IndexPath
	From     *ir.Node
	To       *ir.Node

	// Text holds a character diff when a text value was replaced.
	Text []diffpatch.Diff
}

func (c *Change) String() string {
	switch c.Op {
	case Delete:
		return "- " + pathString(c.FromPath) + " " + describe(c.From)
	case Insert:
		return "+ " + pathString(c.ToPath) + " " + describe(c.To)
	}
	if c.From.Type.IsBranch() || c.To.Type.IsBranch() || c.From.Type != c.To.Type {
		return "~ " + pathString(c.FromPath) + " " + describe(c.From) + " => " + describe(c.To)
	}
	return "~ " + pathString(c.FromPath) + " " + describe(c.From) + " => " + value(c.To)
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[i]
		r := Change{FromPath: c.ToPath, ToPath: c.FromPath, From: c.To, To: c.From}
		switch c.Op {
		case Delete:
			r.Op = Insert
		case Insert:
			r.Op = Delete
		default:
			r.Op = Replace
			for _, t := range c.Text {
				switch t.Type {
				case diffpatch.DiffInsert:
					t.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					t.Type = diffpatch.DiffInsert
				}
				r.Text = append(r.Text, t)
			}
		}
		res[i] = r
	}
	return res
}

func pathString(p ir.IndexPath) string {
	if len(p) == 0 {
		return "."
	}
	return p.String()
}

func describe(n *ir.Node) string {
	name := n.Name
	if n.Type.IsAttr() {
		name = "@" + name
	}
	if n.Type.IsBranch() {
		return fmt.Sprintf("%s <%s>", name, n.Type)
	}
	return fmt.Sprintf("%s <%s> = %s", name, n.Type, value(n))
}

func value(n *ir.Node) string {
	switch n.Type {
	case ir.TextType, ir.AttrTextType:
		return strconv.Quote(n.String)
	case ir.RawType:
		if n.Source != nil {
			return fmt.Sprintf("<%d bytes from source>", n.Source.Len)
		}
		return fmt.Sprintf("<%d bytes>", len(n.Bytes))
	}
	return ir.DictValue(n)
}
