package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, arg := range args {
		p, root, err := parseObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok, root %q, %d records, %d bytes\n", arg, root.Name, p.Records(), p.Offset())
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
