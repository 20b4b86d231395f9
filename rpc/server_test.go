package rpc

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/remodel/dom"
	"github.com/signadot/remodel/instance"

	"go.lsp.dev/jsonrpc2"
)

func widgets() *instance.SharedTree {
	return instance.NewSharedTree(dom.FromSnapshot(&dom.Snapshot{
		Name:      "game",
		ClassName: "DataModel",
		Children: []*dom.Snapshot{
			{Name: "Widgets", ClassName: "Folder", Children: []*dom.Snapshot{
				{Name: "Button1", ClassName: "Button"},
			}},
		},
	}))
}

func connect(t *testing.T, srv *Server) *Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	a, b := net.Pipe()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, a) }()
	c := NewClient(ctx, b)
	t.Cleanup(func() {
		c.Close()
		cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve: %v", err)
		}
	})
	return c
}

func TestRunQuerySnapshot(t *testing.T) {
	shared := widgets()
	srv := NewServer(shared, nil)
	ctx := context.Background()
	c := connect(t, srv)

	out, err := c.Run(ctx, "rename", `
local b = root.Widgets.Button1
b.Name = "Ok"
b.Parent = nil
print(b:GetFullName())`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Ok\n" {
		t.Errorf("Run() output = %q, want %q", out, "Ok\n")
	}

	v, err := c.Query(ctx, `map(children(root), {fullname(#)})`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"Widgets", "Ok"}, v); diff != "" {
		t.Errorf("Query() (-want +got):\n%s", diff)
	}

	got, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := &dom.Snapshot{
		Name:      "game",
		ClassName: "DataModel",
		Children: []*dom.Snapshot{
			{Name: "Widgets", ClassName: "Folder"},
			{Name: "Ok", ClassName: "Button"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snapshot() (-want +got):\n%s", diff)
	}
}

func TestClientsShareTree(t *testing.T) {
	srv := NewServer(widgets(), nil)
	ctx := context.Background()
	c1 := connect(t, srv)
	c2 := connect(t, srv)
	if _, err := c1.Run(ctx, "", `Instance.new("Model").Parent = root.Widgets`); err != nil {
		t.Fatal(err)
	}
	v, err := c2.Query(ctx, `fullname(child(child(root, "Widgets"), "Model"))`)
	if err != nil {
		t.Fatal(err)
	}
	if v != "Widgets.Model" {
		t.Errorf("Query() = %v, want Widgets.Model", v)
	}
}

func TestErrors(t *testing.T) {
	srv := NewServer(widgets(), nil)
	ctx := context.Background()
	c := connect(t, srv)
	_, err := c.Run(ctx, "bad", `local _ = root.Nope`)
	if err == nil || !strings.Contains(err.Error(), "'Nope' is not a valid member of Instance") {
		t.Errorf("Run() = %v", err)
	}
	_, err = c.Query(ctx, `set(child(root, "Widgets"), "ClassName", "Model")`)
	if err == nil || !strings.Contains(err.Error(), "read-only member") {
		t.Errorf("Query() = %v", err)
	}
	_, err = c.conn.Call(ctx, "nope", nil, nil)
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.MethodNotFound {
		t.Errorf("Call(nope) = %v, want method not found", err)
	}
}
