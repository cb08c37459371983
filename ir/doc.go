// Package ir provides the in-memory tree model for CS documents.
//
// # Overview
//
// A CS document is a tree with exactly one Root. The Root and every Branch
// own two ordered sequences: attributes (typed scalars in their own
// namespace) and children (typed scalars and nested branches). Order is
// significant: lookups return the first match by name, and serialization
// emits attributes before children, each in insertion order.
//
// # Node Types
//
//   - RootType, BranchType: composite nodes with Attrs and Children
//   - IntType, Int64Type: signed integers (Int64)
//   - FloatType: float64 (Float64); its wire encoding is truncated
//   - TextType: UTF-8 text (String)
//   - RawType: bytes (Bytes), or a live RawSource with a declared length
//   - BoolType: boolean (Bool)
//   - TimestampType: unix seconds (Int64)
//   - AttrIntType, AttrInt64Type, AttrFloatType, AttrTextType: attributes
//
// # Building Trees
//
//	root := ir.NewRoot("command")
//	desc := root.AddBranch("cmd_desc")
//	desc.AddInt("id", 1234)
//	desc.AddText("name", "STATUS")
//	desc.AddAttrFloat("weight", 5.5)
//
// # Reading Trees
//
//	desc, err := root.Branch("cmd_desc")
//	id, err := desc.Int("id")         // ErrNotFound, ErrTypeMismatch
//	attr, err := root.AtIndexPath("0.2")
//	m := root.ToDict()
//
// Nodes hold no parent pointers; a tree is exclusively owned by its root.
// Trees are not safe for concurrent mutation, and must not be mutated while
// a serializer is reading them.
package ir
