package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/encode"
	"github.com/signadot/remodel/format"
	"github.com/signadot/remodel/parse"

	"github.com/scott-cotton/cli"
)

const (
	defaultRootName  = "game"
	defaultRootClass = "DataModel"
)

// loadTree reads the tree in file, "-" for stdin. An empty name gives an
// empty tree.
func loadTree(cfg *MainConfig, cc *cli.Context, file string) (*dom.Tree, error) {
	if file == "" {
		return dom.New(defaultRootName, defaultRootClass), nil
	}
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	tree, err := parse.ParseTree(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return tree, nil
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

// checkSavable rejects files whose suffix names the outline format, which
// is for display and cannot be read back.
func checkSavable(file string) (format.Format, error) {
	f := format.FromPath(file)
	if f.IsTree() {
		return f, fmt.Errorf("%w: cannot save a tree to %s, outlines are display only", format.ErrBadFormat, file)
	}
	return f, nil
}

// saveTree writes s to file in the format its suffix names.
func saveTree(file string, s *dom.Snapshot) error {
	f, err := checkSavable(file)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(s, buf, encode.EncodeFormat(f)); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return os.WriteFile(file, buf.Bytes(), 0644)
}
