package parse

import "github.com/signadot/remodel/format"

type parseOpts struct {
	format format.Format
	strict bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseStrict rejects fields other than name, class and children.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}
