package query

import (
	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("child", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			name, err := asString(params[1], "child name")
			if err != nil {
				return nil, err
			}
			c, ok, err := node.FindFirstChild(name)
			if err != nil || !ok {
				return nil, err
			}
			return c, nil
		},
			new(func(any, string) any)),
		expr.Function("children", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			kids, err := node.GetChildren()
			if err != nil {
				return nil, err
			}
			res := make([]any, len(kids))
			for i := range kids {
				res[i] = kids[i]
			}
			return res, nil
		},
			new(func(any) []any)),
		expr.Function("get", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			key, err := asString(params[1], "member")
			if err != nil {
				return nil, err
			}
			return node.Index(key)
		},
			new(func(any, string) any)),
		expr.Function("set", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			key, err := asString(params[1], "member")
			if err != nil {
				return nil, err
			}
			if err := node.NewIndex(key, params[2]); err != nil {
				return nil, err
			}
			return node, nil
		},
			new(func(any, string, any) any)),
		expr.Function("name", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			return node.ToString()
		},
			new(func(any) string)),
		expr.Function("fullname", func(params ...any) (any, error) {
			node, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			return node.GetFullName()
		},
			new(func(any) string)),
		expr.Function("same", func(params ...any) (any, error) {
			a, err := asInstance(params[0])
			if err != nil {
				return nil, err
			}
			b, err := asInstance(params[1])
			if err != nil {
				return nil, err
			}
			return a.Equal(b), nil
		},
			new(func(any, any) bool)),
	}
}
