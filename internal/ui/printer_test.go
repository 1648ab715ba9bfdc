package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/samber/oops"

	"github.com/g5becks/md-preview/internal/ui"
)

func newTestPrinter() (*ui.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return ui.NewPrinterWithWriters(&out, &errOut), &out, &errOut
}

func TestUsage(t *testing.T) {
	p, out, errOut := newTestPrinter()
	p.Usage()

	if got := out.String(); got != ui.UsageLine+"\n" {
		t.Errorf("Usage() wrote %q, want %q", got, ui.UsageLine+"\n")
	}
	if errOut.Len() != 0 {
		t.Errorf("Usage() wrote to stderr: %q", errOut.String())
	}
}

func TestBanner(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Banner("README.md", 3000, 2*time.Second)

	got := out.String()
	for _, want := range []string{
		"Previewing",
		"README.md",
		"http://localhost:3000",
		"Auto-refreshes every 2 seconds",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Banner() output missing %q, got: %q", want, got)
		}
	}
}

func TestBannerSubSecondInterval(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Banner("notes.md", 8080, 500*time.Millisecond)

	if !strings.Contains(out.String(), "every 500ms") {
		t.Errorf("Banner() output = %q, want sub-second interval", out.String())
	}
}

func TestRequestFailedIncludesCode(t *testing.T) {
	p, out, errOut := newTestPrinter()
	err := oops.
		Code("FILE_READ_ERROR").
		Wrapf(errors.New("no such file"), "reading watched file")

	p.RequestFailed("/tmp/gone.md", err)

	got := errOut.String()
	for _, want := range []string{"/tmp/gone.md", "no such file", "FILE_READ_ERROR"} {
		if !strings.Contains(got, want) {
			t.Errorf("RequestFailed() output missing %q, got: %q", want, got)
		}
	}
	if out.Len() != 0 {
		t.Errorf("RequestFailed() wrote to stdout: %q", out.String())
	}
}

func TestRequestFailedPlainError(t *testing.T) {
	p, _, errOut := newTestPrinter()
	p.RequestFailed("/tmp/x.md", errors.New("boom"))

	got := errOut.String()
	if !strings.Contains(got, "boom") {
		t.Errorf("RequestFailed() output missing error, got: %q", got)
	}
	if strings.Contains(got, "<nil>") {
		t.Errorf("RequestFailed() output has an empty code for a plain error: %q", got)
	}
}

func TestWrote(t *testing.T) {
	p, _, errOut := newTestPrinter()
	p.Wrote("out.html", 1234)

	got := errOut.String()
	if !strings.Contains(got, "out.html") || !strings.Contains(got, "1234 bytes") {
		t.Errorf("Wrote() output = %q", got)
	}
}
