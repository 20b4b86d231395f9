package instance

import "errors"

var (
	ErrNodeDestroyed  = errors.New("instance was destroyed")
	ErrInvalidMember  = errors.New("invalid member")
	ErrReadOnlyMember = errors.New("read-only member")
	ErrTypeMismatch   = errors.New("type mismatch")
)
