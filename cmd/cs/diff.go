package main

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := libdiff.Diff(from, to)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if len(changes) == 0 {
		return nil
	}
	color := cfg.wantColor(cc.Out)
	for i := range changes {
		c := &changes[i]
		if _, err := fmt.Fprintln(cc.Out, c.String()); err != nil {
			return err
		}
		if cfg.Text && len(c.Text) != 0 {
			if err := writeTextDiff(cc.Out, c.Text, color); err != nil {
				return err
			}
		}
	}
	return cli.ExitCodeErr(1)
}

func writeTextDiff(w io.Writer, diffs []diffpatch.Diff, color bool) error {
	var sb strings.Builder
	sb.WriteString("    ")
	if color {
		sb.WriteString(diffpatch.New().DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffpatch.DiffDelete:
				sb.WriteString("[-" + d.Text + "-]")
			case diffpatch.DiffInsert:
				sb.WriteString("{+" + d.Text + "+}")
			default:
				sb.WriteString(d.Text)
			}
		}
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
