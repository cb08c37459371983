package ir

import (
	"errors"
	"testing"
)

func TestAtIndexPath(t *testing.T) {
	cs := commandTree()
	tests := []struct {
		path string
		name string
		typ  Type
	}{
		{path: "", name: "command", typ: RootType},
		{path: "  ", name: "command", typ: RootType},
		{path: "0", name: "cmd_desc", typ: BranchType},
		{path: "0.5.0", name: "data_inside", typ: BranchType},
		{path: "0.5.0.0", name: "attr", typ: AttrTextType},
		{path: "0.5.0.3", name: "attr4", typ: AttrFloatType},
		{path: "0.5.0.4", name: "foo", typ: TextType},
		{path: "0.5.0.12", name: "quu2", typ: RawType},
	}
	for _, tc := range tests {
		n, err := cs.AtIndexPath(tc.path)
		if err != nil {
			t.Errorf("%q: %v", tc.path, err)
			continue
		}
		if n.Name != tc.name || n.Type != tc.typ {
			t.Errorf("%q: got %s %q want %s %q", tc.path, n.Type, n.Name, tc.typ, tc.name)
		}
	}
}

func TestAtIndexPathErrors(t *testing.T) {
	cs := commandTree()
	if _, err := cs.AtIndexPath("0.x"); !errors.Is(err, ErrBadIndexPath) {
		t.Errorf("bad syntax: got %v", err)
	}
	if _, err := cs.AtIndexPath("3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range: got %v", err)
	}
	if _, err := cs.AtIndexPath("0.0.1"); !errors.Is(err, ErrNotBranch) {
		t.Errorf("through a leaf: got %v", err)
	}
}

func TestIndexPathOf(t *testing.T) {
	cs := commandTree()
	target, err := cs.AtIndexPath("0.5.0.12")
	if err != nil {
		t.Fatal(err)
	}
	p, ok := cs.IndexPathOf(target)
	if !ok {
		t.Fatal("not found")
	}
	if p.String() != "0.5.0.12" {
		t.Errorf("got %s", p)
	}
	if _, ok := cs.IndexPathOf(NewRoot("other")); ok {
		t.Error("foreign node should not be found")
	}
}
