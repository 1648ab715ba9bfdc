package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/samber/oops"
)

// UsageLine is printed when no file argument is given.
const UsageLine = "Usage: md-preview <file.md> [port]"

type styles struct {
	green *color.Color
	red   *color.Color
	cyan  *color.Color
	dim   *color.Color
	bold  *color.Color
}

func newStyles() styles {
	return styles{
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		cyan:  color.New(color.FgCyan, color.Underline),
		dim:   color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
}

// Printer renders startup and request messages. Informational output goes
// to out, failures to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex
	s      styles
}

// NewPrinter creates a Printer that writes to stdout and stderr.
func NewPrinter() *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr)
}

// NewPrinterWithWriters creates a Printer that writes to the given writers.
func NewPrinterWithWriters(out, errOut io.Writer) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		s:      newStyles(),
	}
}

func (p *Printer) Usage() {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, UsageLine)
}

// Banner announces the preview URL once the listener is bound.
func (p *Printer) Banner(file string, port int, refresh time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(p.out, "Previewing %s at %s\n",
		p.s.bold.Sprint(file),
		p.s.cyan.Sprint(url),
	)
	fmt.Fprintln(p.out, p.s.dim.Sprintf("Auto-refreshes every %s", formatInterval(refresh)))
}

// RequestFailed reports a request that could not be served.
func (p *Printer) RequestFailed(path string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("%s %s: %s",
		p.s.red.Sprint("✗"),
		p.s.bold.Sprint(path),
		err,
	)
	if code := errorCode(err); code != "" {
		line += " " + p.s.dim.Sprintf("[%s]", code)
	}

	fmt.Fprintln(p.errOut, line)
}

// Wrote confirms a rendered page was written to path.
func (p *Printer) Wrote(path string, size int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.errOut, "%s %s %s\n",
		p.s.green.Sprint("✓"),
		p.s.bold.Sprint(path),
		p.s.dim.Sprintf("(%d bytes)", size),
	)
}

func errorCode(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	code := fmt.Sprint(oopsErr.Code())
	if code == "<nil>" {
		return ""
	}
	return code
}

func formatInterval(d time.Duration) string {
	if d%time.Second == 0 {
		secs := int(d / time.Second)
		if secs == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", secs)
	}
	return d.String()
}
