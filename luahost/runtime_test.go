package luahost

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/instance"

	lua "github.com/yuin/gopher-lua"
)

func widgetTree() (*dom.Tree, *instance.SharedTree) {
	tree := dom.FromSnapshot(&dom.Snapshot{
		Name:      "game",
		ClassName: "DataModel",
		Children: []*dom.Snapshot{
			{Name: "Widgets", ClassName: "Folder", Children: []*dom.Snapshot{
				{Name: "Button1", ClassName: "Button"},
			}},
		},
	})
	return tree, instance.NewSharedTree(tree)
}

func run(t *testing.T, src string) (*dom.Tree, string) {
	t.Helper()
	tree, shared := widgetTree()
	out := bytes.NewBuffer(nil)
	rt := New(shared, WithOutput(out))
	defer rt.Close()
	if err := rt.DoString(context.Background(), t.Name(), src); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	return tree, out.String()
}

func TestScripts(t *testing.T) {
	tests := []struct {
		name string
		src  string
		out  string
	}{
		{
			name: "members",
			src: `
local w = root:FindFirstChild("Widgets")
print(w.Name, w.ClassName, w.Parent)
print(w.Button1.Parent == w)
print(tostring(w.Button1))`,
			out: "Widgets\tFolder\tnil\ntrue\nButton1\n",
		},
		{
			name: "scenario",
			src: `
local a = root:FindFirstChild("Widgets")
local kids = a:GetChildren()
local b = kids[1]
assert(#kids == 1)
assert(b.Parent == a)
b.Parent = nil
assert(b.Parent == nil)
assert(root:FindFirstChild("Button1") == b)
print(b:GetFullName())`,
			out: "Button1\n",
		},
		{
			name: "find vs index",
			src: `
print(root.Widgets:FindFirstChild("Nope"))
local ok, err = pcall(function() return root.Widgets.Nope end)
print(ok, string.find(err, "'Nope' is not a valid member of Instance", 1, true) ~= nil)`,
			out: "nil\nfalse\ttrue\n",
		},
		{
			name: "writes",
			src: `
local w = root.Widgets
w.Name = "Foo"
print(w.Name, root.Foo == w)
local ok, err = pcall(function() w.Name = 42 end)
print(ok, string.find(err, "'Name' must be a string", 1, true) ~= nil)
ok, err = pcall(function() w.ClassName = "Model" end)
print(ok, string.find(err, "'ClassName' is read-only", 1, true) ~= nil)
ok, err = pcall(function() w.Parent = "root" end)
print(ok, string.find(err, "type mismatch", 1, true) ~= nil)
ok, err = pcall(function() w.Size = 1 end)
print(ok, string.find(err, "'Size' is not a valid member", 1, true) ~= nil)`,
			out: "Foo\ttrue\nfalse\ttrue\nfalse\ttrue\nfalse\ttrue\nfalse\ttrue\n",
		},
		{
			name: "new and reparent",
			src: `
local f = Instance.new("Folder")
print(f.Name, f.ClassName, f.Parent)
root.Widgets.Button1.Parent = f
print(root.Folder.Button1:GetFullName())`,
			out: "Folder\tFolder\tnil\nFolder.Button1\n",
		},
		{
			name: "destroyed",
			src: `
local w = root.Widgets
local b = w.Button1
local alias = root:FindFirstChild("Widgets")
w:Destroy()
print(w == alias, #root:GetChildren())
for _, f in ipairs({
	function() return w.Name end,
	function() return b:GetChildren() end,
	function() return tostring(alias) end,
	function() alias.Name = "x" end,
}) do
	local ok, err = pcall(f)
	print(ok, string.find(err, "instance was destroyed", 1, true) ~= nil)
end`,
			out: "true\t0\n" + strings.Repeat("false\ttrue\n", 4),
		},
		{
			name: "clone",
			src: `
local c = root.Widgets:Clone()
print(c == root.Widgets, c.Parent, c.Button1.Parent == c, #root:GetChildren())`,
			out: "false\tnil\ttrue\t2\n",
		},
		{
			name: "methods shadow children",
			src: `
local f = Instance.new("Folder")
f.Name = "GetChildren"
f.Parent = root.Widgets
print(type(root.Widgets.GetChildren), root.Widgets:FindFirstChild("GetChildren").Name)`,
			out: "function\tGetChildren\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := run(t, tt.src)
			if out != tt.out {
				t.Errorf("output = %q, want %q", out, tt.out)
			}
		})
	}
}

func TestScriptChangesTree(t *testing.T) {
	tree, _ := run(t, `
root.Widgets.Button1.Name = "Ok"
root.Widgets.Ok.Parent = nil
Instance.new("Model").Parent = root.Widgets`)
	want := &dom.Snapshot{
		Name:      "game",
		ClassName: "DataModel",
		Children: []*dom.Snapshot{
			{Name: "Widgets", ClassName: "Folder", Children: []*dom.Snapshot{
				{Name: "Model", ClassName: "Model"},
			}},
			{Name: "Ok", ClassName: "Button"},
		},
	}
	if diff := cmp.Diff(want, tree.Snapshot()); diff != "" {
		t.Errorf("Snapshot() (-want +got):\n%s", diff)
	}
}

func TestScriptError(t *testing.T) {
	_, shared := widgetTree()
	rt := New(shared)
	defer rt.Close()
	err := rt.DoString(context.Background(), "bad", `local x = root.Widgets.Missing`)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *lua.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not a *lua.ApiError", err)
	}
	if !strings.Contains(err.Error(), "'Missing' is not a valid member of Instance") {
		t.Errorf("error = %v", err)
	}
	if err := rt.DoString(context.Background(), "syntax", `root.=`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestCancel(t *testing.T) {
	_, shared := widgetTree()
	rt := New(shared)
	defer rt.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := rt.DoString(ctx, "spin", `while true do local _ = root.Widgets.Name end`)
	if err == nil {
		t.Fatal("expected cancelled script to fail")
	}
}

func TestFromLValue(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	_, shared := widgetTree()
	Register(L, shared)
	root := shared.Root()
	tests := []struct {
		name string
		in   lua.LValue
		want instance.Value
	}{
		{"nil", lua.LNil, nil},
		{"string", lua.LString("x"), "x"},
		{"number", lua.LNumber(42), float64(42)},
		{"bool", lua.LTrue, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromLValue(tt.in); got != tt.want {
				t.Errorf("FromLValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	got, ok := FromLValue(Wrap(L, root)).(instance.Instance)
	if !ok || !got.Equal(root) {
		t.Errorf("FromLValue(userdata) = %v, want root", got)
	}
	tbl := L.NewTable()
	if got := FromLValue(tbl); got != lua.LValue(tbl) {
		t.Errorf("FromLValue(table) = %v, want the table", got)
	}
}

func TestSharedTreeManyRuntimes(t *testing.T) {
	tree, shared := widgetTree()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rt := New(shared, WithOutput(bytes.NewBuffer(nil)))
			defer rt.Close()
			err := rt.DoString(context.Background(), "worker", `
local f = Instance.new("Folder")
local g = Instance.new("Part")
for i = 1, 50 do
	g.Parent = f
	assert(g.Parent == f)
	g.Parent = root.Widgets
end
f:Destroy()
g:Destroy()`)
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if tree.Len() != 3 {
		t.Errorf("tree has %d nodes, want 3", tree.Len())
	}
}
