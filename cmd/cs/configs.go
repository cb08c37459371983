package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/encode"
	"github.com/signadot/cs-format/format"
	"github.com/signadot/cs-format/parse"
)

type MainConfig struct {
	V          bool `cli:"name=v aliases=verbose desc='log each input as it is processed'"`
	Color      bool `cli:"name=color desc='output with color'"`
	NativeBool bool `cli:"name=nb desc='encode booleans with the B indicator'"`
	ReadSize   int  `cli:"name=rs desc='input chunk size in bytes'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ReadSize(cfg.ReadSize)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.NativeBool(cfg.NativeBool),
	}
	if cfg.wantColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) wantColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Indent int `cli:"name=i desc='indentation per level'"`
	View   *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t desc='show character diffs of replaced text'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type SumConfig struct {
	*MainConfig
	Sum *cli.Command
}
