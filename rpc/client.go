package rpc

import (
	"context"
	"io"

	"github.com/signadot/remodel/dom"

	"go.lsp.dev/jsonrpc2"
)

type Client struct {
	conn jsonrpc2.Conn
}

// NewClient starts a connection over rwc. The client does not accept
// calls from the server.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}
}

func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.conn.Done()
	return closeErr(err)
}

func (c *Client) Run(ctx context.Context, name, src string) (string, error) {
	res := &RunResult{}
	if _, err := c.conn.Call(ctx, MethodRun, &RunParams{Name: name, Source: src}, res); err != nil {
		return "", err
	}
	return res.Output, nil
}

func (c *Client) Query(ctx context.Context, src string) (any, error) {
	res := &QueryResult{}
	if _, err := c.conn.Call(ctx, MethodQuery, &QueryParams{Source: src}, res); err != nil {
		return nil, err
	}
	return res.Value, nil
}

func (c *Client) Snapshot(ctx context.Context) (*dom.Snapshot, error) {
	res := &dom.Snapshot{}
	if _, err := c.conn.Call(ctx, MethodSnapshot, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
