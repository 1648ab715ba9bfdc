package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/oops"

	"github.com/g5becks/md-preview/internal/parser"
)

type OutlineOptions struct {
	JSON bool
}

// RenderOutline writes the outline of file to w as a table or JSON.
func RenderOutline(w io.Writer, file string, outline *parser.Outline, opts OutlineOptions) error {
	if opts.JSON {
		return renderOutlineJSON(w, file, outline)
	}

	renderOutlineTable(w, file, outline)
	return nil
}

type outlineOutput struct {
	File string `json:"file"`
	*parser.Outline
}

func renderOutlineJSON(w io.Writer, file string, outline *parser.Outline) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(outlineOutput{File: file, Outline: outline}); err != nil {
		return oops.
			Code("JSON_ERROR").
			Wrapf(err, "encoding outline")
	}

	return nil
}

func renderOutlineTable(w io.Writer, file string, outline *parser.Outline) {
	fmt.Fprintf(w, "%s (%d lines)\n", file, outline.Lines)
	if outline.Title != "" {
		fmt.Fprintf(w, "title: %s\n", outline.Title)
	}
	fmt.Fprintln(w)

	if len(outline.Headings) == 0 {
		fmt.Fprintln(w, "No headings found.")
		return
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)
	writer.AppendHeader(table.Row{"LINE", "LEVEL", "HEADING"})

	for _, h := range outline.Headings {
		writer.AppendRow(table.Row{
			h.Line,
			"h" + fmt.Sprint(h.Level),
			strings.Repeat("  ", h.Level-1) + h.Text,
		})
	}

	writer.Render()
}
