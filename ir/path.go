package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexPath addresses a node by position. Each element indexes the
// attributes of a branch followed by its children, so for a branch with
// two attributes index 2 is its first child.
type IndexPath []int

func (p IndexPath) String() string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ".")
}

// Append returns a new path extending p by i.
func (p IndexPath) Append(i int) IndexPath {
	res := make(IndexPath, len(p), len(p)+1)
	copy(res, p)
	return append(res, i)
}

// ParseIndexPath parses a dotted index path such as "0.5.0". The empty
// (or blank) string is the path of the root itself.
func ParseIndexPath(s string) (IndexPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return IndexPath{}, nil
	}
	frags := strings.Split(s, ".")
	res := make(IndexPath, len(frags))
	for i, frag := range frags {
		x, err := strconv.Atoi(frag)
		if err != nil || x < 0 {
			return nil, fmt.Errorf("%w: %q at element %d", ErrBadIndexPath, s, i)
		}
		res[i] = x
	}
	return res, nil
}

// AtIndexPath returns the node at the dotted index path s relative to n.
func (n *Node) AtIndexPath(s string) (*Node, error) {
	p, err := ParseIndexPath(s)
	if err != nil {
		return nil, err
	}
	return n.GetIndexPath(p)
}

func (n *Node) GetIndexPath(p IndexPath) (*Node, error) {
	x := n
	for i, index := range p {
		if !x.Type.IsBranch() {
			return nil, fmt.Errorf("%w: %s at %s", ErrNotBranch, x.Type, p[:i])
		}
		if index < len(x.Attrs) {
			x = x.Attrs[index]
			continue
		}
		ci := index - len(x.Attrs)
		if ci >= len(x.Children) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p[:i+1])
		}
		x = x.Children[ci]
	}
	return x, nil
}

// IndexPathOf returns the path from n to target, or false when target is
// not in the tree rooted at n.
func (n *Node) IndexPathOf(target *Node) (IndexPath, bool) {
	if n == target {
		return IndexPath{}, true
	}
	for i, e := range n.Entries() {
		if sub, ok := e.IndexPathOf(target); ok {
			return append(IndexPath{i}, sub...), true
		}
	}
	return nil, false
}
