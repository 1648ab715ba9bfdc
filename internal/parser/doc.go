// Package parser extracts the heading outline of a preview document.
//
// Unlike the preview converter, outlines come from a real Markdown AST
// (gomarkdown), so fenced code and setext headings are handled correctly.
package parser
