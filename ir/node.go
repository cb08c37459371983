package ir

import (
	"fmt"
	"io"
	"time"
)

// Node is one element of a CS tree. Which value field is meaningful depends
// on Type:
//
//   - IntType, Int64Type, TimestampType, AttrIntType, AttrInt64Type: Int64
//   - FloatType, AttrFloatType: Float64
//   - BoolType: Bool
//   - TextType, AttrTextType: String
//   - RawType: Bytes, or Source when the payload is produced on demand
//   - RootType, BranchType: Attrs and Children
type Node struct {
	Type Type
	Name string

	Attrs    []*Node
	Children []*Node

	Int64   int64
	Float64 float64
	Bool    bool
	String  string
	Bytes   []byte
	Source  *RawSource
}

// RawSource is a raw payload which is read from R when the tree is
// serialized. Len is the number of bytes R will produce; it is written in
// the record header before any payload byte is read.
type RawSource struct {
	R   io.Reader
	Len int64
}

func NewRoot(name string) *Node {
	return &Node{Type: RootType, Name: name}
}

func (n *Node) mustBranch(op string) {
	if n == nil || !n.Type.IsBranch() {
		panic(fmt.Sprintf("ir: %s called on non-branch node", op))
	}
}

func (n *Node) addChild(t Type, name string) *Node {
	c := &Node{Type: t, Name: name}
	n.Children = append(n.Children, c)
	return c
}

func (n *Node) addAttr(t Type, name string) *Node {
	a := &Node{Type: t, Name: name}
	n.Attrs = append(n.Attrs, a)
	return a
}

func (n *Node) AddBranch(name string) *Node {
	n.mustBranch("AddBranch")
	return n.addChild(BranchType, name)
}

func (n *Node) AddInt(name string, v int64) *Node {
	n.mustBranch("AddInt")
	c := n.addChild(IntType, name)
	c.Int64 = v
	return c
}

func (n *Node) AddInt64(name string, v int64) *Node {
	n.mustBranch("AddInt64")
	c := n.addChild(Int64Type, name)
	c.Int64 = v
	return c
}

func (n *Node) AddFloat(name string, v float64) *Node {
	n.mustBranch("AddFloat")
	c := n.addChild(FloatType, name)
	c.Float64 = v
	return c
}

func (n *Node) AddBool(name string, v bool) *Node {
	n.mustBranch("AddBool")
	c := n.addChild(BoolType, name)
	c.Bool = v
	return c
}

func (n *Node) AddText(name, v string) *Node {
	n.mustBranch("AddText")
	c := n.addChild(TextType, name)
	c.String = v
	return c
}

func (n *Node) AddRaw(name string, v []byte) *Node {
	n.mustBranch("AddRaw")
	c := n.addChild(RawType, name)
	c.Bytes = v
	return c
}

// AddRawSource adds a raw value whose payload is pulled from r during
// serialization. size must be exactly the number of bytes r produces.
func (n *Node) AddRawSource(name string, r io.Reader, size int64) *Node {
	n.mustBranch("AddRawSource")
	c := n.addChild(RawType, name)
	c.Source = &RawSource{R: r, Len: size}
	return c
}

// AddTimestamp adds a timestamp in unix seconds.
func (n *Node) AddTimestamp(name string, v int64) *Node {
	n.mustBranch("AddTimestamp")
	c := n.addChild(TimestampType, name)
	c.Int64 = v
	return c
}

func (n *Node) AddAttrInt(name string, v int64) *Node {
	n.mustBranch("AddAttrInt")
	a := n.addAttr(AttrIntType, name)
	a.Int64 = v
	return a
}

func (n *Node) AddAttrInt64(name string, v int64) *Node {
	n.mustBranch("AddAttrInt64")
	a := n.addAttr(AttrInt64Type, name)
	a.Int64 = v
	return a
}

func (n *Node) AddAttrFloat(name string, v float64) *Node {
	n.mustBranch("AddAttrFloat")
	a := n.addAttr(AttrFloatType, name)
	a.Float64 = v
	return a
}

func (n *Node) AddAttrText(name, v string) *Node {
	n.mustBranch("AddAttrText")
	a := n.addAttr(AttrTextType, name)
	a.String = v
	return a
}

// AddChild adds a child of kind t. Branches take a nil value; scalar kinds
// take a Go value convertible to the kind's payload.
func (n *Node) AddChild(t Type, name string, value any) (*Node, error) {
	n.mustBranch("AddChild")
	if t == BranchType {
		if value != nil {
			return nil, fmt.Errorf("%w: branch %q takes no value", ErrInvalidKind, name)
		}
		return n.AddBranch(name), nil
	}
	if !t.IsValue() {
		return nil, fmt.Errorf("%w: %s is not a child kind", ErrInvalidKind, t)
	}
	c := &Node{Type: t, Name: name}
	if err := c.setValue(value); err != nil {
		return nil, err
	}
	n.Children = append(n.Children, c)
	return c, nil
}

// AddAttribute adds an attribute of kind t.
func (n *Node) AddAttribute(t Type, name string, value any) (*Node, error) {
	n.mustBranch("AddAttribute")
	if !t.IsAttr() {
		return nil, fmt.Errorf("%w: %s is not an attribute kind", ErrInvalidKind, t)
	}
	a := &Node{Type: t, Name: name}
	if err := a.setValue(value); err != nil {
		return nil, err
	}
	n.Attrs = append(n.Attrs, a)
	return a, nil
}

func (n *Node) setValue(value any) error {
	bad := func() error {
		return fmt.Errorf("%w: cannot store %T in %s %q", ErrInvalidKind, value, n.Type, n.Name)
	}
	switch n.Type {
	case IntType, Int64Type, AttrIntType, AttrInt64Type:
		i, ok := toInt64(value)
		if !ok {
			return bad()
		}
		n.Int64 = i
	case TimestampType:
		if t, ok := value.(time.Time); ok {
			n.Int64 = t.Unix()
			return nil
		}
		i, ok := toInt64(value)
		if !ok {
			return bad()
		}
		n.Int64 = i
	case FloatType, AttrFloatType:
		switch x := value.(type) {
		case float64:
			n.Float64 = x
		case float32:
			n.Float64 = float64(x)
		default:
			i, ok := toInt64(value)
			if !ok {
				return bad()
			}
			n.Float64 = float64(i)
		}
	case BoolType:
		b, ok := value.(bool)
		if !ok {
			return bad()
		}
		n.Bool = b
	case TextType, AttrTextType:
		switch x := value.(type) {
		case string:
			n.String = x
		case []byte:
			n.String = string(x)
		default:
			return bad()
		}
	case RawType:
		switch x := value.(type) {
		case []byte:
			n.Bytes = x
		case string:
			n.Bytes = []byte(x)
		case *RawSource:
			n.Source = x
		default:
			return bad()
		}
	default:
		return bad()
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}
	return 0, false
}

// Walk visits n and then, for branches, each attribute followed by each
// child, depth first. Returning an error from fn stops the walk.
func (n *Node) Walk(fn func(n *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if err := a.walk(fn, depth+1); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the attributes followed by the children of n, the
// sequence addressed by index paths.
func (n *Node) Entries() []*Node {
	res := make([]*Node, 0, len(n.Attrs)+len(n.Children))
	res = append(res, n.Attrs...)
	return append(res, n.Children...)
}
