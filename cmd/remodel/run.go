package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/signadot/remodel/instance"
	"github.com/signadot/remodel/luahost"

	"github.com/scott-cotton/cli"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: run requires 1 script, got %v", cli.ErrUsage, args)
	}
	if cfg.Diff && cfg.Patch {
		return fmt.Errorf("%w: at most one of -diff and -patch", cli.ErrUsage)
	}
	if cfg.Write != "" {
		if _, err := checkSavable(cfg.Write); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	tree, err := loadTree(cfg.MainConfig, cc, cfg.In)
	if err != nil {
		return err
	}
	before := tree.Snapshot()
	shared := instance.NewSharedTree(tree)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log := cfg.log().With("cmd", "run", "script", args[0])
	rt := luahost.New(shared, luahost.WithOutput(cc.Out), luahost.WithLogger(log))
	defer rt.Close()
	if args[0] == "-" {
		src, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading script: %w", err)
		}
		err = rt.DoString(ctx, "stdin", string(src))
	} else {
		err = rt.DoFile(ctx, args[0])
	}
	if err != nil {
		return err
	}

	after, err := shared.Snapshot()
	if err != nil {
		return err
	}
	switch {
	case cfg.Diff:
		if _, err := io.WriteString(cc.Out, treeDiff(before, after, cfg.useColor(cc.Out))); err != nil {
			return err
		}
	case cfg.Patch:
		p, err := treePatch(before, after)
		if err != nil {
			return fmt.Errorf("error computing patch: %w", err)
		}
		if _, err := cc.Out.Write(append(p, '\n')); err != nil {
			return err
		}
	}
	if cfg.Write != "" {
		if err := saveTree(cfg.Write, after); err != nil {
			return err
		}
		log.Info("wrote tree", "file", cfg.Write, "nodes", after.Count())
	}
	return nil
}
