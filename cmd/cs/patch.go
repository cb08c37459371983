package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/format"
	"github.com/signadot/cs-format/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	fmat := format.JSONFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	if fmat != format.JSONFormat && fmat != format.YAMLFormat {
		return fmt.Errorf("%w: patch output must be json or yaml, not %s", cli.ErrUsage, fmat)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cli.ErrUsage, args[0], err)
	}
	return eachObj(cfg.MainConfig, cc, args[1:], func(_ string, node *ir.Node) error {
		d, err := json.Marshal(node.ToDict())
		if err != nil {
			return err
		}
		out, err := ops.Apply(d)
		if err != nil {
			return fmt.Errorf("error patching: %w", err)
		}
		if fmat == format.YAMLFormat {
			out, err = yaml.JSONToYAML(out)
			if err != nil {
				return err
			}
		} else {
			buf := &bytes.Buffer{}
			if err := json.Indent(buf, out, "", "  "); err != nil {
				return err
			}
			out = append(buf.Bytes(), '\n')
		}
		_, err = cc.Out.Write(out)
		return err
	})
}
