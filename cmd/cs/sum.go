package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/encode"
	"github.com/signadot/cs-format/ir"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		cfg.Sum.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := []encode.EncodeOption{encode.NativeBool(cfg.NativeBool)}
	return eachObj(cfg.MainConfig, cc, args, func(name string, node *ir.Node) error {
		d, err := encode.Sum(node, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s  %s\n", d, name)
		return err
	})
}
