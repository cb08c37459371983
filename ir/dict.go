package ir

import (
	"fmt"
	"math"
	"strconv"
)

// AttrPrefix prefixes attribute keys in the map produced by ToDict.
const AttrPrefix = "ATTR::"

// ToDict exports a branch as nested maps in the layout used by the other
// CS implementations:
//
//	{name: [{key: [value, ...], branch: [{...}], "ATTR::key": [value]}]}
//
// Scalar values are rendered as strings. Values sharing a name accumulate in
// their list in sequence order. A branch is stored under its name as a
// one-element list, so a later branch with the same name replaces an
// earlier one.
func (n *Node) ToDict() map[string]any {
	if !n.Type.IsBranch() {
		return map[string]any{dictKey(n): DictValue(n)}
	}
	children := map[string]any{}
	for _, a := range n.Attrs {
		addDictEntry(children, a)
	}
	for _, c := range n.Children {
		addDictEntry(children, c)
	}
	return map[string]any{n.Name: []any{children}}
}

func addDictEntry(children map[string]any, e *Node) {
	if e.Type.IsBranch() {
		children[e.Name] = e.ToDict()[e.Name]
		return
	}
	key := dictKey(e)
	list, _ := children[key].([]any)
	children[key] = append(list, DictValue(e))
}

func dictKey(e *Node) string {
	if e.Type.IsAttr() {
		return AttrPrefix + e.Name
	}
	return e.Name
}

// DictValue renders a scalar node's value as it appears in ToDict.
func DictValue(e *Node) string {
	switch e.Type {
	case IntType, Int64Type, TimestampType, AttrIntType, AttrInt64Type:
		return strconv.FormatInt(e.Int64, 10)
	case FloatType, AttrFloatType:
		return formatFloat(e.Float64)
	case BoolType:
		return strconv.FormatBool(e.Bool)
	case TextType, AttrTextType:
		return e.String
	case RawType:
		if e.Source != nil {
			return fmt.Sprintf("<raw source %d bytes>", e.Source.Len)
		}
		return string(e.Bytes)
	}
	return ""
}

// shortest round-tripping decimal, switching to exponent form outside
// [1e-6, 1e21) like ECMAScript number formatting.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
