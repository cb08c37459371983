package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/encode"
	"github.com/signadot/cs-format/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an index path", cli.ErrUsage)
	}
	path, err := ir.ParseIndexPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachObj(cfg.MainConfig, cc, args[1:], func(_ string, node *ir.Node) error {
		n, err := node.GetIndexPath(path)
		if err != nil {
			return err
		}
		if !n.Type.IsBranch() {
			_, err := io.WriteString(cc.Out, ir.DictValue(n)+"\n")
			return err
		}
		return encode.Encode(asRoot(n), cc.Out, opts...)
	})
}

// asRoot views a branch as the root of its own tree, sharing its entries.
func asRoot(n *ir.Node) *ir.Node {
	if n.Type == ir.RootType {
		return n
	}
	return &ir.Node{Type: ir.RootType, Name: n.Name, Attrs: n.Attrs, Children: n.Children}
}
