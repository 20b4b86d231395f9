package query

import (
	"fmt"

	"github.com/signadot/remodel/debug"
	"github.com/signadot/remodel/instance"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RootVar is the name of the variable holding the root instance.
const RootVar = "root"

type Env map[string]any

type Program struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Run evaluates the program with root bound to RootVar.
func (p *Program) Run(root instance.Instance) (any, error) {
	if debug.Script() {
		debug.Logf("query %q\n", p.src)
	}
	return expr.Run(p.prg, Env{RootVar: root})
}

// Eval compiles and runs src.
func Eval(src string, root instance.Instance) (any, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(root)
}

func asInstance(v any) (instance.Instance, error) {
	switch x := v.(type) {
	case instance.Instance:
		return x, nil
	case *instance.Instance:
		if x != nil {
			return *x, nil
		}
	}
	return instance.Instance{}, fmt.Errorf("%w: expected Instance, got %s", instance.ErrTypeMismatch, instance.TypeName(v))
}

func asString(v any, what string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %s", instance.ErrTypeMismatch, what, instance.TypeName(v))
	}
	return s, nil
}

// Display replaces instances in v, including inside slices, by their full
// names so that results can be printed or encoded.
func Display(v any) (any, error) {
	switch x := v.(type) {
	case instance.Instance:
		return x.GetFullName()
	case []any:
		res := make([]any, len(x))
		for i := range x {
			d, err := Display(x[i])
			if err != nil {
				return nil, err
			}
			res[i] = d
		}
		return res, nil
	}
	return v, nil
}
