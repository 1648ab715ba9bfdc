package main

import (
	"context"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/md-preview/internal/parser"
	"github.com/g5becks/md-preview/internal/ui"
)

func newOutlineCommand() *cli.Command {
	return &cli.Command{
		Name:      "outline",
		Usage:     "Show the heading structure of a file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: outlineAction,
	}
}

func outlineAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: md-preview outline <file>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	file := cmd.Args().First()

	content, err := os.ReadFile(file)
	if err != nil {
		return oops.
			Code("FILE_READ_ERROR").
			With("path", file).
			Hint("Check that the file exists and is readable").
			Wrapf(err, "reading file")
	}

	if parser.IsBinary(content) {
		return oops.
			Code("INVALID_ARGS").
			With("path", file).
			Hint("Outlines are only available for text documents").
			Errorf("%q looks like a binary file", file)
	}

	return ui.RenderOutline(
		cmd.Root().Writer,
		file,
		parser.ParseOutline(content),
		ui.OutlineOptions{JSON: cmd.Bool("json")},
	)
}
