package encode

import "github.com/signadot/remodel/format"

type EncodeOption func(*EncState)

type EncState struct {
	format format.Format
	depth  int
	Color  *Colors
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Depth limits the tree format to n levels below the top node. Zero means
// no limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}
