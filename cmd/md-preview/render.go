package main

import (
	"context"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/md-preview/internal/config"
	"github.com/g5becks/md-preview/internal/fsutil"
	"github.com/g5becks/md-preview/internal/server"
)

const renderFileMode = 0o644

func newRenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Write the preview page once instead of serving it",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Page title (default: file name)",
			},
		},
		Action: renderAction,
	}
}

func renderAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: md-preview render <file> [-o out.html]").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	printer := newPrinter(cmd)

	srv, err := server.New(server.Options{
		Path:            cmd.Args().First(),
		Title:           cmd.String("title"),
		RefreshInterval: resolveRefresh(cmd, cfg),
		Printer:         printer,
	})
	if err != nil {
		return err
	}

	body, err := srv.Render()
	if err != nil {
		return err
	}

	output := cmd.String("output")
	if output == "" {
		if _, writeErr := cmd.Root().Writer.Write(body); writeErr != nil {
			return oops.
				Code("WRITE_FAILED").
				Wrapf(writeErr, "writing page to stdout")
		}
		return nil
	}

	if err := fsutil.WriteFileAtomic(output, body, renderFileMode); err != nil {
		return err
	}

	printer.Wrote(output, len(body))
	return nil
}
