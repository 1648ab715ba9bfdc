package parser

import (
	"bytes"
	"strings"
)

// IsBinary checks first 512 bytes for null bytes.
func IsBinary(content []byte) bool {
	const maxCheckSize = 512
	size := min(len(content), maxCheckSize)
	return bytes.IndexByte(content[:size], 0) != -1
}

// StripBOM removes UTF-8 BOM (0xEF, 0xBB, 0xBF) if present.
func StripBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
}

// StripFrontmatter removes a leading --- delimited block and returns the
// remaining body plus the block's title value, if any.
func StripFrontmatter(content []byte) ([]byte, string) {
	rest, ok := cutOpening(content)
	if !ok {
		return content, ""
	}

	block, body, ok := cutClosing(rest)
	if !ok {
		return content, ""
	}

	var title string
	for line := range bytes.SplitSeq(block, []byte("\n")) {
		if value, found := bytes.CutPrefix(bytes.TrimSpace(line), []byte("title:")); found {
			title = strings.Trim(strings.TrimSpace(string(value)), `"'`)
		}
	}

	return body, title
}

func cutOpening(content []byte) ([]byte, bool) {
	if rest, ok := bytes.CutPrefix(content, []byte("---\n")); ok {
		return rest, true
	}
	return bytes.CutPrefix(content, []byte("---\r\n"))
}

func cutClosing(rest []byte) ([]byte, []byte, bool) {
	for _, delim := range []string{"\n---\n", "\n---\r\n"} {
		if block, body, found := bytes.Cut(rest, []byte(delim)); found {
			return block, body, true
		}
	}
	return nil, nil, false
}
