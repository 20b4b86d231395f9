package parse

import "errors"

var (
	ErrParse = errors.New("parse error")
	ErrEmpty = errors.New("empty document")
)
