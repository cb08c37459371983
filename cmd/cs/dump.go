package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/encode"
	"github.com/signadot/cs-format/ir"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := cfg.encOpts(cc.Out)
	return eachObj(cfg.MainConfig, cc, args, func(_ string, node *ir.Node) error {
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		return nil
	})
}
