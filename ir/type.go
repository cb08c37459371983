package ir

import "fmt"

type Type int

const (
	RootType Type = iota
	BranchType
	IntType
	Int64Type
	FloatType
	TextType
	RawType
	BoolType
	TimestampType
	AttrIntType
	AttrInt64Type
	AttrFloatType
	AttrTextType
)

var typeNames = map[Type]string{
	RootType:      "Root",
	BranchType:    "Branch",
	IntType:       "Int",
	Int64Type:     "Int64",
	FloatType:     "Float",
	TextType:      "Text",
	RawType:       "Raw",
	BoolType:      "Bool",
	TimestampType: "Timestamp",
	AttrIntType:   "AttrInt",
	AttrInt64Type: "AttrInt64",
	AttrFloatType: "AttrFloat",
	AttrTextType:  "AttrText",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		RootType,
		BranchType,
		IntType,
		Int64Type,
		FloatType,
		TextType,
		RawType,
		BoolType,
		TimestampType,
		AttrIntType,
		AttrInt64Type,
		AttrFloatType,
		AttrTextType,
	}
}

// IsBranch reports whether nodes of type t own attributes and children.
func (t Type) IsBranch() bool {
	return t == RootType || t == BranchType
}

// IsAttr reports whether t lives in the attribute namespace of a branch.
func (t Type) IsAttr() bool {
	switch t {
	case AttrIntType, AttrInt64Type, AttrFloatType, AttrTextType:
		return true
	default:
		return false
	}
}

// IsValue reports whether t is a scalar child kind.
func (t Type) IsValue() bool {
	switch t {
	case IntType, Int64Type, FloatType, TextType, RawType, BoolType, TimestampType:
		return true
	default:
		return false
	}
}

func (t Type) IsLeaf() bool {
	return !t.IsBranch()
}
