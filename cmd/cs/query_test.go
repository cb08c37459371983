package main

import (
	"testing"

	"github.com/expr-lang/expr"

	"github.com/signadot/cs-format/ir"
)

func TestQueryExpr(t *testing.T) {
	root := ir.NewRoot("command")
	b := root.AddBranch("cmd_desc")
	b.AddInt("id", 1234)
	b.AddText("name", "STATUS")

	env := map[string]any{"name": root.Name, "root": dictBody(root)}
	tests := []struct {
		code string
		want any
	}{
		{`name`, "command"},
		{`root.cmd_desc[0].name[0]`, "STATUS"},
		{`at("0.0")`, "1234"},
		{`kind("0")`, "Branch"},
		{`int(at("0.0")) + 1`, 1235},
	}
	for _, tt := range tests {
		program, err := expr.Compile(tt.code, append(exprOpts(root), expr.Env(env))...)
		if err != nil {
			t.Fatalf("%s: %v", tt.code, err)
		}
		got, err := expr.Run(program, env)
		if err != nil {
			t.Fatalf("%s: %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %#v want %#v", tt.code, got, tt.want)
		}
	}
}

func TestAsRoot(t *testing.T) {
	root := ir.NewRoot("r")
	b := root.AddBranch("b")
	b.AddInt("i", 1)
	r := asRoot(b)
	if r.Type != ir.RootType || r.Name != "b" || len(r.Children) != 1 {
		t.Errorf("got %s %q with %d children", r.Type, r.Name, len(r.Children))
	}
	if asRoot(root) != root {
		t.Error("root not returned as is")
	}
}
