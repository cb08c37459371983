package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cs-format/ir"
)

func strs(changes []Change) []string {
	res := make([]string, len(changes))
	for i := range changes {
		res[i] = changes[i].String()
	}
	return res
}

func TestDiffEqual(t *testing.T) {
	mk := func() *ir.Node {
		r := ir.NewRoot("r")
		r.AddAttrText("a", "x")
		b := r.AddBranch("b")
		b.AddInt("i", 1)
		b.AddRaw("raw", []byte{0, 1})
		return r
	}
	if changes := Diff(mk(), mk()); changes != nil {
		t.Errorf("got %v", strs(changes))
	}
}

func TestDiffNested(t *testing.T) {
	from := ir.NewRoot("r")
	from.AddAttrInt("a", 1)
	fb := from.AddBranch("b")
	fb.AddInt("x", 1)
	fb.AddText("y", "hello")
	from.AddInt("z", 3)

	to := ir.NewRoot("r")
	tb := to.AddBranch("b")
	tb.AddInt("x", 2)
	tb.AddText("y", "hello")
	tb.AddInt("w", 9)
	to.AddInt("z", 3)

	want := []string{
		"- 0 @a <AttrInt> = 1",
		"~ 1.0 x <Int> = 1 => 2",
		"+ 0.2 w <Int> = 9",
	}
	changes := Diff(from, to)
	if diff := cmp.Diff(want, strs(changes)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got, err := to.GetIndexPath(changes[2].ToPath); err != nil || got.Name != "w" {
		t.Errorf("insert path resolves to %v, %v", got, err)
	}

	back := Reverse(changes)
	want = []string{
		"+ 0 @a <AttrInt> = 1",
		"~ 0.0 x <Int> = 2 => 1",
		"- 0.2 w <Int> = 9",
	}
	if diff := cmp.Diff(want, strs(back)); diff != "" {
		t.Errorf("reverse (-want +got):\n%s", diff)
	}
}

func TestDiffText(t *testing.T) {
	from := ir.NewRoot("r")
	from.AddText("t", "hello world")
	to := ir.NewRoot("r")
	to.AddText("t", "hello there")

	changes := Diff(from, to)
	if len(changes) != 1 || changes[0].Op != Replace {
		t.Fatalf("got %v", strs(changes))
	}
	dmp := diffpatch.New()
	if got := dmp.DiffText1(changes[0].Text); got != "hello world" {
		t.Errorf("text1: %q", got)
	}
	if got := dmp.DiffText2(changes[0].Text); got != "hello there" {
		t.Errorf("text2: %q", got)
	}
	back := Reverse(changes)
	if got := dmp.DiffText1(back[0].Text); got != "hello there" {
		t.Errorf("reversed text1: %q", got)
	}
}

func TestDiffRootRenamed(t *testing.T) {
	changes := Diff(ir.NewRoot("a"), ir.NewRoot("b"))
	want := []string{"~ . a <Root> => b <Root>"}
	if diff := cmp.Diff(want, strs(changes)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffKindChanged(t *testing.T) {
	from := ir.NewRoot("r")
	from.AddInt("v", 1)
	to := ir.NewRoot("r")
	to.AddInt64("v", 1)
	want := []string{
		"- 0 v <Int> = 1",
		"+ 0 v <Int64> = 1",
	}
	if diff := cmp.Diff(want, strs(Diff(from, to))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
