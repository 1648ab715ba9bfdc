package parser_test

import (
	"testing"

	"github.com/g5becks/md-preview/internal/parser"
)

func TestParseOutline(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantTitle    string
		wantHeadings int
		wantLines    int
	}{
		{
			name: "ATX headings",
			content: `# Main Title
## Section 1
### Subsection
## Section 2`,
			wantTitle:    "Main Title",
			wantHeadings: 4,
			wantLines:    4,
		},
		{
			name: "frontmatter title wins",
			content: `---
title: My Document
---
# Content`,
			wantTitle:    "My Document",
			wantHeadings: 1,
			wantLines:    4,
		},
		{
			name:         "no headings",
			content:      "Just a paragraph.\nAnd another line.",
			wantTitle:    "",
			wantHeadings: 0,
			wantLines:    2,
		},
		{
			name:         "empty file",
			content:      "",
			wantTitle:    "",
			wantHeadings: 0,
			wantLines:    1,
		},
		{
			name:         "code blocks ignored",
			content:      "# Real Heading\n```\n# Fake Heading\n```",
			wantTitle:    "Real Heading",
			wantHeadings: 1,
			wantLines:    4,
		},
		{
			name:         "title falls back to first H1 after H2",
			content:      "## Intro\n# Actual Title",
			wantTitle:    "Actual Title",
			wantHeadings: 2,
			wantLines:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := parser.ParseOutline([]byte(tt.content))

			if outline.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", outline.Title, tt.wantTitle)
			}
			if len(outline.Headings) != tt.wantHeadings {
				t.Errorf("Headings count = %d, want %d", len(outline.Headings), tt.wantHeadings)
			}
			if outline.Lines != tt.wantLines {
				t.Errorf("Lines = %d, want %d", outline.Lines, tt.wantLines)
			}
		})
	}
}

func TestParseOutline_InlineMarkupFlattened(t *testing.T) {
	outline := parser.ParseOutline([]byte("## Using `go test` with **flags**"))

	if len(outline.Headings) != 1 {
		t.Fatalf("Headings count = %d, want 1", len(outline.Headings))
	}
	if got, want := outline.Headings[0].Text, "Using go test with flags"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParseOutline_HeadingLineNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantLevels []int
		wantLines  []int
	}{
		{
			name:       "ATX headings with blank lines",
			content:    "# Title\n\nSome text.\n\n## Section\n\n### Sub",
			wantLevels: []int{1, 2, 3},
			wantLines:  []int{1, 5, 7},
		},
		{
			name:       "frontmatter offsets line numbers",
			content:    "---\ntitle: Test\n---\n\n## Query Basics\n\n### Details",
			wantLevels: []int{2, 3},
			wantLines:  []int{5, 7},
		},
		{
			name:       "setext headings",
			content:    "Title\n=====\n\nSection\n------\n\n### ATX",
			wantLevels: []int{1, 2, 3},
			wantLines:  []int{1, 4, 7},
		},
		{
			name:       "headings inside code blocks ignored",
			content:    "# Real\n\n```\n# Fake\n```\n\n## Also Real",
			wantLevels: []int{1, 2},
			wantLines:  []int{1, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outline := parser.ParseOutline([]byte(tt.content))
			if len(outline.Headings) != len(tt.wantLines) {
				t.Fatalf("Headings count = %d, want %d", len(outline.Headings), len(tt.wantLines))
			}

			for i, heading := range outline.Headings {
				if heading.Level != tt.wantLevels[i] {
					t.Errorf("Heading[%d] %q: Level = %d, want %d", i, heading.Text, heading.Level, tt.wantLevels[i])
				}
				if heading.Line != tt.wantLines[i] {
					t.Errorf("Heading[%d] %q: Line = %d, want %d", i, heading.Text, heading.Line, tt.wantLines[i])
				}
			}
		})
	}
}
