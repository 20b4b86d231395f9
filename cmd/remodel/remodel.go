package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

func remodelMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	// the output file is only truncated once the command line is known
	// to be good
	if cfg.Out != "" && cfg.Out != "-" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return fmt.Errorf("could not create output %q: %w", cfg.Out, err)
		}
		defer f.Close()
		cc.Out = f
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// check rejects output format flags that contradict each other.
func (cfg *MainConfig) check() error {
	var set []string
	for _, f := range []struct {
		name string
		on   bool
	}{{"t", cfg.T}, {"j", cfg.J}, {"y", cfg.Y}, {"O", cfg.OutFormat != nil}} {
		if f.on {
			set = append(set, "-"+f.name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %s conflict, give one output format", cli.ErrUsage, strings.Join(set, " and "))
	}
	return nil
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

func (cfg *MainConfig) log() *slog.Logger {
	if cfg.Verbose {
		return verboseLog
	}
	return theLog
}
