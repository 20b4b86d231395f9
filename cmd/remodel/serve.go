package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/signadot/remodel/instance"
	"github.com/signadot/remodel/rpc"

	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %v", cli.ErrUsage, args)
	}
	tree, err := loadTree(cfg.MainConfig, cc, cfg.In)
	if err != nil {
		return err
	}
	shared := instance.NewSharedTree(tree)
	log := cfg.log().With("cmd", "serve")
	srv := rpc.NewServer(shared, &rpc.Config{Log: log})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Info("serving", "nodes", tree.Len())
	err = srv.Serve(ctx, &stdioReadWriteCloser{read: cc.In, write: cc.Out})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
