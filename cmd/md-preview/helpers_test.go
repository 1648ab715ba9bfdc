package main

import (
	"context"
	"io"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/md-preview/internal/config"
)

// probePort runs args through a root command whose action only records the
// resolved port.
func probePort(t *testing.T, args []string) int {
	t.Helper()

	got := -1
	cmd := newRootCommand(io.Discard, io.Discard)
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		got = resolvePort(c, cfg)
		return nil
	}

	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return got
}
