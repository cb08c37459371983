package ir

import "fmt"

// Child returns the first child of n named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Attr returns the first attribute of n named name, or nil.
func (n *Node) Attr(name string) *Node {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (n *Node) typedChild(name string, t Type) (*Node, error) {
	c := n.Child(name)
	if c == nil {
		return nil, fmt.Errorf("%w: child %q", ErrNotFound, name)
	}
	if c.Type != t {
		return nil, fmt.Errorf("%w: child %q is %s, not %s", ErrTypeMismatch, name, c.Type, t)
	}
	return c, nil
}

func (n *Node) typedAttr(name string, t Type) (*Node, error) {
	a := n.Attr(name)
	if a == nil {
		return nil, fmt.Errorf("%w: attribute %q", ErrNotFound, name)
	}
	if a.Type != t {
		return nil, fmt.Errorf("%w: attribute %q is %s, not %s", ErrTypeMismatch, name, a.Type, t)
	}
	return a, nil
}

func (n *Node) Branch(name string) (*Node, error) {
	c, err := n.typedChild(name, BranchType)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Node) Int(name string) (int64, error) {
	c, err := n.typedChild(name, IntType)
	if err != nil {
		return 0, err
	}
	return c.Int64, nil
}

// Int64Child returns the value of an Int64 child.
func (n *Node) Int64Child(name string) (int64, error) {
	c, err := n.typedChild(name, Int64Type)
	if err != nil {
		return 0, err
	}
	return c.Int64, nil
}

func (n *Node) Float(name string) (float64, error) {
	c, err := n.typedChild(name, FloatType)
	if err != nil {
		return 0, err
	}
	return c.Float64, nil
}

// BoolChild returns the value of a Bool child.
func (n *Node) BoolChild(name string) (bool, error) {
	c, err := n.typedChild(name, BoolType)
	if err != nil {
		return false, err
	}
	return c.Bool, nil
}

func (n *Node) Text(name string) (string, error) {
	c, err := n.typedChild(name, TextType)
	if err != nil {
		return "", err
	}
	return c.String, nil
}

func (n *Node) Raw(name string) ([]byte, error) {
	c, err := n.typedChild(name, RawType)
	if err != nil {
		return nil, err
	}
	if c.Source != nil {
		return nil, fmt.Errorf("%w: child %q", ErrNotMaterialized, name)
	}
	return c.Bytes, nil
}

// Timestamp returns a timestamp child in unix seconds. Parsed timestamps
// which were out of range hold -1.
func (n *Node) Timestamp(name string) (int64, error) {
	c, err := n.typedChild(name, TimestampType)
	if err != nil {
		return 0, err
	}
	return c.Int64, nil
}

func (n *Node) AttrInt(name string) (int64, error) {
	a, err := n.typedAttr(name, AttrIntType)
	if err != nil {
		return 0, err
	}
	return a.Int64, nil
}

func (n *Node) AttrInt64(name string) (int64, error) {
	a, err := n.typedAttr(name, AttrInt64Type)
	if err != nil {
		return 0, err
	}
	return a.Int64, nil
}

func (n *Node) AttrFloat(name string) (float64, error) {
	a, err := n.typedAttr(name, AttrFloatType)
	if err != nil {
		return 0, err
	}
	return a.Float64, nil
}

func (n *Node) AttrText(name string) (string, error) {
	a, err := n.typedAttr(name, AttrTextType)
	if err != nil {
		return "", err
	}
	return a.String, nil
}
