package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/remodel/encode"
	"github.com/signadot/remodel/format"
	"github.com/signadot/remodel/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log script and rpc activity'"`

	T bool `cli:"name=t aliases=tree desc='output as an outline'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out string

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

// parseOpts returns the options for reading file. Without an explicit
// format, the file suffix decides.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	fmat := format.FromPath(file)
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	fmt := def
	switch {
	case cfg.T:
		fmt = format.TreeFormat
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
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

type RunConfig struct {
	*MainConfig
	In    string `cli:"name=in desc='tree file to run against'"`
	Write string `cli:"name=w desc='write the resulting tree to file'"`
	Diff  bool   `cli:"name=diff desc='print a line diff of the tree outline'"`
	Patch bool   `cli:"name=patch desc='print a JSON merge patch of the changes'"`

	Run *cli.Command
}

type QueryConfig struct {
	*MainConfig
	In string `cli:"name=in desc='tree file to query'"`

	Query *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='outline depth limit'"`

	View *cli.Command
}

type ServeConfig struct {
	*MainConfig
	In string `cli:"name=in desc='tree file to serve'"`

	Serve *cli.Command
}
