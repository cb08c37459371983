package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cs-format/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	code := args[0]
	return eachObj(cfg.MainConfig, cc, args[1:], func(_ string, node *ir.Node) error {
		env := map[string]any{
			"name": node.Name,
			"root": dictBody(node),
		}
		opts := append(exprOpts(node), expr.Env(env))
		program, err := expr.Compile(code, opts...)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res, err := expr.Run(program, env)
		if err != nil {
			return err
		}
		d, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(append(d, '\n'))
		return err
	})
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("at", func(params ...any) (any, error) {
			n, err := doc.AtIndexPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if n.Type.IsBranch() {
				return dictBody(n), nil
			}
			return ir.DictValue(n), nil
		},
			new(func(string) any)),
		expr.Function("kind", func(params ...any) (any, error) {
			n, err := doc.AtIndexPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return n.Type.String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// dictBody is the map form of a branch without the enclosing name.
func dictBody(n *ir.Node) any {
	return n.ToDict()[n.Name].([]any)[0]
}
