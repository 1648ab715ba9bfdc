// Package page wraps a rendered fragment in the preview document shell.
package page

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"time"

	"github.com/samber/oops"
)

// DefaultRefreshInterval is how often the browser reloads the page.
const DefaultRefreshInterval = 2 * time.Second

//go:embed page.html.tmpl
var pageSource string

//nolint:gochecknoglobals // Parsed once at init.
var pageTemplate = template.Must(template.New("page").Parse(pageSource))

// Data is the input to the page template.
type Data struct {
	// Title is shown in the browser tab, usually the watched file's base name.
	Title string
	// Body is inserted as-is.
	Body string
	// RefreshInterval defaults to DefaultRefreshInterval when zero.
	RefreshInterval time.Duration
}

type templateData struct {
	Title         string
	Body          template.HTML
	RefreshMillis int64
}

// Render writes the full HTML document for d to w.
func Render(w io.Writer, d Data) error {
	interval := d.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	//nolint:gosec // The fragment is intentionally emitted unescaped.
	body := template.HTML(d.Body)

	if err := pageTemplate.Execute(w, templateData{
		Title:         d.Title,
		Body:          body,
		RefreshMillis: interval.Milliseconds(),
	}); err != nil {
		return oops.
			Code("RENDER_FAILED").
			With("title", d.Title).
			Wrapf(err, "rendering page template")
	}

	return nil
}

// Bytes renders d into a new buffer.
func Bytes(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
