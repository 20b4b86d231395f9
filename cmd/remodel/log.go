package main

import (
	"log/slog"
	"os"
)

var (
	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: dropTimeAndInfo,
	}))
	verboseLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: dropTimeAndInfo,
	}))
)

func dropTimeAndInfo(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	if a.Key == slog.LevelKey {
		if a.Value.String() == "INFO" {
			return slog.Attr{}
		}
	}
	return a
}
