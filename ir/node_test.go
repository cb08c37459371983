package ir

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func commandTree() *Node {
	cs := NewRoot("command")
	b := cs.AddBranch("cmd_desc")
	b.AddInt("id", 1234)
	b.AddText("name", "STATUS")
	b.AddText("type", "REQUEST")
	b.AddInt("vnodeid", 0)
	b.AddBranch("data")

	d := b.AddBranch("data2").AddBranch("data_inside")
	d.AddAttrText("attr", "a")
	d.AddAttrInt("attr2", 5)
	d.AddAttrInt64("attr3", 5)
	d.AddAttrFloat("attr4", 5.5)

	d.AddText("foo", "bar")
	d.AddText("foo2", "bar\nbar")
	d.AddText("foo3", "bar\nbar2\n")
	d.AddTimestamp("ts", 1280449171)
	d.AddInt("quu", 42)
	d.AddInt64("quu64", 42)
	d.AddFloat("quu12", 42.7)
	d.AddBool("quu2", true)
	d.AddRaw("quu2", []byte("aAZERTYIOIUTRDCVGHGVG\ngsjgfhdshdFhjs\n"))
	return cs
}

func TestBranchSimpleData(t *testing.T) {
	cs := commandTree()
	b, err := cs.Branch("cmd_desc")
	if err != nil {
		t.Fatal(err)
	}
	id, err := b.Int("id")
	if err != nil {
		t.Fatal(err)
	}
	if id != 1234 {
		t.Errorf("id: got %d want 1234", id)
	}
	name, err := b.Text("name")
	if err != nil {
		t.Fatal(err)
	}
	if name != "STATUS" {
		t.Errorf("name: got %q want STATUS", name)
	}
}

func TestAccessorTypeMismatch(t *testing.T) {
	b, err := commandTree().Branch("cmd_desc")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Int("name"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Int on text: got %v", err)
	}
	if _, err := b.Text("id"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Text on int: got %v", err)
	}
	if _, err := b.Branch("id"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Branch on int: got %v", err)
	}
	if _, err := b.Int("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: got %v", err)
	}
	if c := b.Child("missing"); c != nil {
		t.Errorf("Child(missing): got %v", c)
	}
}

func TestDuplicateNameFirstWins(t *testing.T) {
	d, err := commandTree().AtIndexPath("0.5.0")
	if err != nil {
		t.Fatal(err)
	}
	v, err := d.BoolChild("quu2")
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("expected first quu2 to be true")
	}
	if _, err := d.Raw("quu2"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Raw(quu2) should see the bool first, got %v", err)
	}
}

func TestInt64Child(t *testing.T) {
	d, err := commandTree().AtIndexPath("0.5.0")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := d.Int64Child("quu64"); err != nil || v != 42 {
		t.Errorf("quu64: got %d %v", v, err)
	}
	if _, err := d.Int64Child("quu"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Int64Child on int: got %v", err)
	}
	if _, err := d.BoolChild("quu"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("BoolChild on int: got %v", err)
	}
}

func TestAttrAccessors(t *testing.T) {
	d, err := commandTree().AtIndexPath("0.5.0")
	if err != nil {
		t.Fatal(err)
	}
	if s, err := d.AttrText("attr"); err != nil || s != "a" {
		t.Errorf("attr: %q %v", s, err)
	}
	if i, err := d.AttrInt("attr2"); err != nil || i != 5 {
		t.Errorf("attr2: %d %v", i, err)
	}
	if i, err := d.AttrInt64("attr3"); err != nil || i != 5 {
		t.Errorf("attr3: %d %v", i, err)
	}
	if f, err := d.AttrFloat("attr4"); err != nil || f != 5.5 {
		t.Errorf("attr4: %v %v", f, err)
	}
	if _, err := d.Text("attr"); !errors.Is(err, ErrNotFound) {
		t.Errorf("attributes and children are separate namespaces, got %v", err)
	}
}

func TestAddChildGeneric(t *testing.T) {
	root := NewRoot("r")
	if _, err := root.AddChild(IntType, "i", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := root.AddChild(TimestampType, "ts", time.Unix(99, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := root.AddChild(RawType, "src", &RawSource{R: strings.NewReader("xy"), Len: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := root.AddChild(BranchType, "b", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := root.AddChild(AttrIntType, "a", 1); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("attribute kind as child: got %v", err)
	}
	if _, err := root.AddChild(BoolType, "b", 1); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("int as bool: got %v", err)
	}
	if _, err := root.AddAttribute(TextType, "t", "x"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("child kind as attribute: got %v", err)
	}
	if _, err := root.AddAttribute(AttrFloatType, "f", 2); err != nil {
		t.Fatal(err)
	}
	if ts, _ := root.Timestamp("ts"); ts != 99 {
		t.Errorf("ts: got %d", ts)
	}
	if _, err := root.Raw("src"); !errors.Is(err, ErrNotMaterialized) {
		t.Errorf("Raw on source: got %v", err)
	}
	if f, _ := root.AttrFloat("f"); f != 2 {
		t.Errorf("f: got %v", f)
	}
	if len(root.Children) != 4 || len(root.Attrs) != 1 {
		t.Errorf("got %d children %d attrs", len(root.Children), len(root.Attrs))
	}
}

func TestAddOnLeafPanics(t *testing.T) {
	leaf := NewRoot("r").AddInt("i", 1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	leaf.AddInt("j", 2)
}

func TestWalkOrder(t *testing.T) {
	root := NewRoot("r")
	root.AddInt("c1", 1)
	root.AddAttrInt("a1", 1)
	b := root.AddBranch("b")
	b.AddText("c2", "x")
	b.AddAttrText("a2", "y")

	var names []string
	err := root.Walk(func(n *Node, depth int) error {
		names = append(names, strings.Repeat(".", depth)+n.Name)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(names, " ")
	want := "r .a1 .c1 .b ..a2 ..c2"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	a, b := commandTree(), commandTree()
	if !Equal(a, b) {
		t.Fatal("identical trees should be equal")
	}
	d, _ := b.AtIndexPath("0.5.0")
	d.Children[0].String = "baz"
	if Equal(a, b) {
		t.Fatal("trees differ in a text value")
	}
	c := commandTree()
	c.Children[0].Children = c.Children[0].Children[1:]
	if Compare(a, c) == 0 {
		t.Fatal("trees differ in child count")
	}
}
