package luahost

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/signadot/remodel/debug"
	"github.com/signadot/remodel/instance"

	lua "github.com/yuin/gopher-lua"
)

// RootGlobal is the Lua global holding the root instance.
const RootGlobal = "root"

type Runtime struct {
	L    *lua.LState
	tree *instance.SharedTree
	out  io.Writer
	log  *slog.Logger
}

type Option func(*Runtime)

func WithLogger(log *slog.Logger) Option {
	return func(r *Runtime) { r.log = log }
}

// WithOutput sets where the Lua print function writes. The default is
// standard output.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) { r.out = w }
}

// New creates a Lua state with the standard libraries, the Instance type,
// and the root of tree bound to the global "root".
func New(tree *instance.SharedTree, opts ...Option) *Runtime {
	r := &Runtime{
		L:    lua.NewState(),
		tree: tree,
		out:  os.Stdout,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	Register(r.L, tree)
	r.L.SetGlobal(RootGlobal, Wrap(r.L, tree.Root()))
	r.L.SetGlobal("print", r.L.NewFunction(r.print))
	return r
}

func (r *Runtime) Close() {
	r.L.Close()
}

// DoString runs src. name identifies the chunk in logs and errors.
// Cancelling ctx stops the script between Lua instructions.
func (r *Runtime) DoString(ctx context.Context, name, src string) error {
	fn, err := r.L.Load(strings.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	return r.call(ctx, name, fn)
}

// DoFile runs the Lua file at path.
func (r *Runtime) DoFile(ctx context.Context, path string) error {
	fn, err := r.L.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return r.call(ctx, path, fn)
}

func (r *Runtime) call(ctx context.Context, name string, fn *lua.LFunction) error {
	if debug.Script() {
		debug.Logf("lua run %s\n", name)
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()
	r.L.Push(fn)
	if err := r.L.PCall(0, lua.MultRet, nil); err != nil {
		r.log.Debug("script failed", "script", name, "error", err)
		return fmt.Errorf("running %s: %w", name, err)
	}
	r.log.Debug("script done", "script", name)
	return nil
}

func (r *Runtime) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(r.out, strings.Join(parts, "\t"))
	return 0
}
