package main

import (
	"fmt"

	"github.com/signadot/remodel/instance"
	rquery "github.com/signadot/remodel/query"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: query requires 1 expression, got %v", cli.ErrUsage, args)
	}
	prg, err := rquery.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	tree, err := loadTree(cfg.MainConfig, cc, cfg.In)
	if err != nil {
		return err
	}
	res, err := prg.Run(instance.NewSharedTree(tree).Root())
	if err != nil {
		return err
	}
	res, err = rquery.Display(res)
	if err != nil {
		return err
	}
	if s, ok := res.(string); ok {
		_, err = fmt.Fprintln(cc.Out, s)
		return err
	}
	d, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out, string(d))
	return err
}
