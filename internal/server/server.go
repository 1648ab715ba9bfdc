// Package server serves the live preview page for a single watched file.
//
// Every request re-reads the file from disk. Nothing is cached and no state
// is shared between requests beyond the file itself.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/g5becks/md-preview/internal/convert"
	"github.com/g5becks/md-preview/internal/page"
	"github.com/g5becks/md-preview/internal/ui"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	// Path of the watched file. It is resolved to an absolute path once.
	Path string
	// Title defaults to the base name of Path.
	Title           string
	RefreshInterval time.Duration
	Converter       *convert.Converter
	Printer         *ui.Printer
}

type Server struct {
	path      string
	title     string
	refresh   time.Duration
	converter *convert.Converter
	printer   *ui.Printer
}

func New(opts Options) (*Server, error) {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, oops.
			Code("INVALID_ARGS").
			With("path", opts.Path).
			Wrapf(err, "resolving absolute path")
	}

	s := &Server{
		path:      path,
		title:     opts.Title,
		refresh:   opts.RefreshInterval,
		converter: opts.Converter,
		printer:   opts.Printer,
	}

	if s.title == "" {
		s.title = filepath.Base(opts.Path)
	}
	if s.converter == nil {
		s.converter = convert.Default
	}
	if s.printer == nil {
		s.printer = ui.NewPrinter()
	}

	return s, nil
}

// Path returns the absolute path of the watched file.
func (s *Server) Path() string {
	return s.path
}

// Render reads the watched file and returns the complete preview page.
func (s *Server) Render() ([]byte, error) {
	source, err := os.ReadFile(s.path)
	if err != nil {
		return nil, oops.
			Code("FILE_READ_ERROR").
			With("path", s.path).
			Hint("Check that the previewed file exists and is readable").
			Wrapf(err, "reading watched file")
	}

	return page.Bytes(page.Data{
		Title:           s.title,
		Body:            s.converter.Convert(string(source)),
		RefreshInterval: s.refresh,
	})
}

// ServeHTTP answers every method and path with the rendered page. When the
// file cannot be read the request is aborted without a response.
func (s *Server) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	body, err := s.Render()
	if err != nil {
		s.printer.RequestFailed(s.path, err)
		panic(http.ErrAbortHandler)
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Serve handles connections on ln until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	//nolint:gosec // Stock net/http timeouts for a local preview.
	httpServer := &http.Server{Handler: s}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return oops.
				Code("SERVE_FAILED").
				With("addr", ln.Addr().String()).
				Wrapf(err, "serving preview")
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return oops.
				Code("SERVE_FAILED").
				With("addr", ln.Addr().String()).
				Wrapf(err, "shutting down preview server")
		}
		return nil
	})

	return group.Wait()
}
