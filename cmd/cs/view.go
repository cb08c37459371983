package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/encode"
	"github.com/signadot/cs-format/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := append(cfg.encOpts(cc.Out), encode.Indent(cfg.Indent))
	i := 0
	return eachObj(cfg.MainConfig, cc, args, func(_ string, node *ir.Node) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		i++
		return encode.View(node, cc.Out, opts...)
	})
}
