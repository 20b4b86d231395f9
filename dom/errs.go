package dom

import "errors"

var (
	ErrNotFound = errors.New("node not found")
	ErrCycle    = errors.New("parent would create a cycle")
	ErrRoot     = errors.New("operation not allowed on the root")
)
