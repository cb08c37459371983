package ir

import (
	"encoding/json"
)

type inspectNode struct {
	Name       string  `json:"name"`
	Type       Type    `json:"type"`
	AttrList   []*Node `json:"attrList"`
	ObjectList []*Node `json:"objectList"`
	Value      any     `json:"value"`
}

type inspectSource struct {
	Len int64 `json:"len"`
}

// MarshalJSON renders the node in inspection form: name, type, attribute
// list, child list and value. Raw values render as base64; a live raw source
// renders only its declared length.
func (n *Node) MarshalJSON() ([]byte, error) {
	in := &inspectNode{
		Name:       n.Name,
		Type:       n.Type,
		AttrList:   n.Attrs,
		ObjectList: n.Children,
	}
	if in.AttrList == nil {
		in.AttrList = []*Node{}
	}
	if in.ObjectList == nil {
		in.ObjectList = []*Node{}
	}
	switch n.Type {
	case IntType, Int64Type, TimestampType, AttrIntType, AttrInt64Type:
		in.Value = n.Int64
	case FloatType, AttrFloatType:
		in.Value = n.Float64
	case BoolType:
		in.Value = n.Bool
	case TextType, AttrTextType:
		in.Value = n.String
	case RawType:
		if n.Source != nil {
			in.Value = inspectSource{Len: n.Source.Len}
		} else {
			in.Value = n.Bytes
		}
	}
	return json.Marshal(in)
}
