package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes are ordered by type, then name, then value, then attributes and
// children in sequence order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}

	switch a.Type {
	case IntType, Int64Type, TimestampType, AttrIntType, AttrInt64Type:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType, AttrFloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case TextType, AttrTextType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case RawType:
		return compareRaw(a, b)
	case RootType, BranchType:
		if c := compareSeq(a.Attrs, b.Attrs); c != 0 {
			return c
		}
		return compareSeq(a.Children, b.Children)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// a live source is only equal to itself: it cannot be read here without
// consuming it.
func compareRaw(a, b *Node) int {
	switch {
	case a.Source == nil && b.Source == nil:
		return bytes.Compare(a.Bytes, b.Bytes)
	case a.Source == nil:
		return -1
	case b.Source == nil:
		return 1
	}
	if c := cmp.Compare(a.Source.Len, b.Source.Len); c != 0 {
		return c
	}
	if a.Source == b.Source {
		return 0
	}
	return 1
}

func compareSeq(as, bs []*Node) int {
	minLen := min(len(as), len(bs))
	for i := 0; i < minLen; i++ {
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}
