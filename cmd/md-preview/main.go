package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/md-preview/internal/config"
	"github.com/g5becks/md-preview/internal/server"
	"github.com/g5becks/md-preview/internal/ui"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCommand(os.Stdout, os.Stderr).Run(ctx, args)
}

func newRootCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "md-preview",
		Usage:     "Preview a Markdown file in the browser, reloading every few seconds",
		ArgsUsage: "<file> [port]",
		Version:   versionString(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to an optional TOML config file"},
			&cli.StringFlag{Name: "host", Usage: "Interface to bind (default: all)"},
			&cli.IntFlag{Name: "refresh", Usage: "Browser reload interval in milliseconds"},
		},
		Commands: []*cli.Command{
			newOutlineCommand(),
			newRenderCommand(),
		},
		Action: previewAction,
	}
}

func previewAction(ctx context.Context, cmd *cli.Command) error {
	printer := newPrinter(cmd)

	if cmd.Args().Len() == 0 {
		printer.Usage()
		return nil
	}

	file := cmd.Args().Get(0)

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	refresh := resolveRefresh(cmd, cfg)

	srv, err := server.New(server.Options{
		Path:            file,
		RefreshInterval: refresh,
		Printer:         printer,
	})
	if err != nil {
		return err
	}

	ln, err := server.Listen(resolveHost(cmd, cfg), resolvePort(cmd, cfg))
	if err != nil {
		return err
	}

	printer.Banner(file, server.BoundPort(ln), refresh)

	return srv.Serve(ctx, ln)
}

func newPrinter(cmd *cli.Command) *ui.Printer {
	root := cmd.Root()
	return ui.NewPrinterWithWriters(root.Writer, root.ErrWriter)
}

// resolvePort prefers the positional port, then the config file, then 3000.
func resolvePort(cmd *cli.Command, cfg *config.Config) int {
	if cmd.Args().Len() >= 2 {
		return server.ParsePort(cmd.Args().Get(1))
	}
	return cfg.Port
}

func resolveHost(cmd *cli.Command, cfg *config.Config) string {
	if cmd.IsSet("host") {
		return cmd.String("host")
	}
	return cfg.Host
}

func resolveRefresh(cmd *cli.Command, cfg *config.Config) time.Duration {
	if cmd.IsSet("refresh") && cmd.Int("refresh") > 0 {
		return time.Duration(cmd.Int("refresh")) * time.Millisecond
	}
	return cfg.RefreshInterval()
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
