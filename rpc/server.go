package rpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/signadot/remodel/debug"
	"github.com/signadot/remodel/instance"
	"github.com/signadot/remodel/luahost"
	"github.com/signadot/remodel/query"

	"github.com/goccy/go-json"
	"go.lsp.dev/jsonrpc2"
)

const (
	MethodRun      = "run"
	MethodQuery    = "query"
	MethodSnapshot = "snapshot"
)

type RunParams struct {
	Name   string `json:"name,omitempty"`
	Source string `json:"source"`
}

type RunResult struct {
	Output string `json:"output"`
}

type QueryParams struct {
	Source string `json:"source"`
}

type QueryResult struct {
	Value any `json:"value"`
}

type Config struct {
	Log *slog.Logger
}

type Server struct {
	tree *instance.SharedTree
	log  *slog.Logger
}

func NewServer(tree *instance.SharedTree, cfg *Config) *Server {
	s := &Server{tree: tree, log: slog.Default()}
	if cfg != nil && cfg.Log != nil {
		s.log = cfg.Log
	}
	return s
}

// Serve handles requests on rwc until the peer goes away or ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handle)
	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-conn.Done():
	}
	return closeErr(conn.Err())
}

func closeErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}

func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s\n", req.Method(), req.Params())
	}
	var (
		res any
		err error
	)
	switch req.Method() {
	case MethodRun:
		var p RunParams
		if err := decode(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		res, err = s.run(ctx, &p)
	case MethodQuery:
		var p QueryParams
		if err := decode(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		res, err = s.query(&p)
	case MethodSnapshot:
		res, err = s.tree.Snapshot()
	default:
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.MethodNotFound, "method not found: "+req.Method()))
	}
	if err != nil {
		s.log.Warn("request failed", "method", req.Method(), "error", err)
		return reply(ctx, nil, err)
	}
	if debug.RPC() {
		debug.LogAny(res)
	}
	return reply(ctx, res, nil)
}

func decode(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	return nil
}

func (s *Server) run(ctx context.Context, p *RunParams) (*RunResult, error) {
	name := p.Name
	if name == "" {
		name = "rpc"
	}
	out := bytes.NewBuffer(nil)
	rt := luahost.New(s.tree, luahost.WithOutput(out), luahost.WithLogger(s.log))
	defer rt.Close()
	if err := rt.DoString(ctx, name, p.Source); err != nil {
		return nil, err
	}
	return &RunResult{Output: out.String()}, nil
}

func (s *Server) query(p *QueryParams) (*QueryResult, error) {
	v, err := query.Eval(p.Source, s.tree.Root())
	if err != nil {
		return nil, err
	}
	d, err := query.Display(v)
	if err != nil {
		return nil, err
	}
	return &QueryResult{Value: d}, nil
}
