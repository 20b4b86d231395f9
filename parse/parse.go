package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/format"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*dom.Snapshot, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	res := &dom.Snapshot{}
	switch pOpts.format {
	case format.YAMLFormat:
		var yOpts []yaml.DecodeOption
		if pOpts.strict {
			yOpts = append(yOpts, yaml.DisallowUnknownField())
		}
		if err := yaml.UnmarshalWithOptions(d, res, yOpts...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(d))
		if pOpts.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(res); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
	if err := check(res, "$"); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseTree parses d and builds a tree from it.
func ParseTree(d []byte, opts ...ParseOption) (*dom.Tree, error) {
	s, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return dom.FromSnapshot(s), nil
}

func check(s *dom.Snapshot, path string) error {
	if s == nil {
		return fmt.Errorf("%w: %s: null node", ErrParse, path)
	}
	if s.ClassName == "" {
		return fmt.Errorf("%w: %s: node %q has no class", ErrParse, path, s.Name)
	}
	for i, c := range s.Children {
		if err := check(c, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
