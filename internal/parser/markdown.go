package parser

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

const (
	maxATXLevel   = 6
	maxIndent     = 4
	setextH1Level = 1
	setextH2Level = 2
)

// Outline is the heading structure of one document.
type Outline struct {
	Title    string    `json:"title,omitempty"`
	Lines    int       `json:"lines"`
	Headings []Heading `json:"headings"`
}

type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// ParseOutline walks content and returns its headings in document order.
// The title is the frontmatter title when present, else the first H1.
func ParseOutline(content []byte) *Outline {
	content = StripBOM(content)
	body, fmTitle := StripFrontmatter(content)

	doc := parser.NewWithExtensions(parser.CommonExtensions).Parse(body)
	headings := collectHeadings(doc)

	offset := bytes.Count(content[:len(content)-len(body)], []byte("\n"))
	newLineScanner(body, offset).assign(headings)

	title := fmTitle
	if title == "" {
		title = firstH1(headings)
	}

	return &Outline{
		Title:    title,
		Lines:    bytes.Count(content, []byte("\n")) + 1,
		Headings: headings,
	}
}

func collectHeadings(doc ast.Node) []Heading {
	headings := []Heading{}

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.GoToNext
		}

		if text := textOf(heading); text != "" {
			headings = append(headings, Heading{Level: heading.Level, Text: text})
		}
		return ast.SkipChildren
	})

	return headings
}

func firstH1(headings []Heading) string {
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

func textOf(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Text:
			buf.Write(leaf.Literal)
		case *ast.Code:
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(buf.String()), " ")
}

// lineScanner recovers source line numbers, which gomarkdown's AST does not
// keep, by matching heading markers in order outside fenced blocks.
type lineScanner struct {
	lines  [][]byte
	offset int
}

func newLineScanner(body []byte, offset int) *lineScanner {
	return &lineScanner{lines: bytes.Split(body, []byte("\n")), offset: offset}
}

func (s *lineScanner) assign(headings []Heading) {
	next := 0
	fenced := false

	for i := 0; i < len(s.lines) && next < len(headings); i++ {
		trimmed := bytes.TrimSpace(s.lines[i])

		if isFence(trimmed) {
			fenced = !fenced
			continue
		}
		if fenced {
			continue
		}

		want := headings[next].Level
		if atxLevel(s.lines[i]) == want || s.setextLevel(i, trimmed) == want {
			headings[next].Line = s.offset + i + 1
			next++
		}
	}
}

func (s *lineScanner) setextLevel(i int, trimmed []byte) int {
	if i+1 >= len(s.lines) || len(trimmed) == 0 {
		return 0
	}

	underline := bytes.TrimSpace(s.lines[i+1])
	switch {
	case repeats(underline, '='):
		return setextH1Level
	case repeats(underline, '-'):
		return setextH2Level
	default:
		return 0
	}
}

func isFence(trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~"))
}

// atxLevel returns 1-6 for an ATX heading line and 0 otherwise.
func atxLevel(line []byte) int {
	indent := 0
	for indent < len(line) && indent < maxIndent && line[indent] == ' ' {
		indent++
	}
	if indent >= maxIndent {
		return 0
	}

	rest := line[indent:]
	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > maxATXLevel || level >= len(rest) || rest[level] != ' ' {
		return 0
	}
	return level
}

func repeats(b []byte, ch byte) bool {
	if len(b) == 0 {
		return false
	}
	return len(bytes.Trim(b, string(ch))) == 0
}
