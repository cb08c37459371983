package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/ir"
	"github.com/signadot/cs-format/parse"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	_, root, err := parseObjFile(cc, path, opts...)
	return root, err
}

// parseObjFile also returns the parser, for its record count and offset.
func parseObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*parse.Parser, *ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	p := parse.NewParser(opts...)
	n, err := p.ReadFrom(r)
	if err != nil {
		return p, nil, err
	}
	root, err := p.Finish()
	if err != nil {
		return p, nil, err
	}
	theLog.Debug("parsed", "file", path, "bytes", n, "records", p.Records())
	return p, root, nil
}

// eachObj parses each file in args, or stdin when there are none, and
// calls fn with the tree.
func eachObj(cfg *MainConfig, cc *cli.Context, args []string, fn func(string, *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := fn(arg, node); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
