package main

import (
	"fmt"
	"io"

	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/encode"
	"github.com/signadot/remodel/format"
	"github.com/signadot/remodel/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encOpts(cc.Out, format.TreeFormat), encode.Depth(cfg.Depth))
	for i, file := range args {
		s, err := viewFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(s, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) (*dom.Snapshot, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	s, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return s, nil
}
