// Package preview serves a directory of static pages for local viewing, with browser caching
// turned off so that edits show up on reload.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const (
	DefaultPort         = 8000
	DefaultBrowserDelay = 2 * time.Second
	TestPagePath        = "/test-map.html"
	MainPagePath        = "/estimate-form.html"

	shutdownTimeout = 5 * time.Second
)

// BrowserOpener opens url in a web browser.
type BrowserOpener func(url string) error

// Server serves Dir on Port. If OpenBrowser is non-nil, it is called once with the test page
// URL BrowserDelay after the server starts listening.
type Server struct {
	Dir          string
	Port         int
	BrowserDelay time.Duration
	OpenBrowser  BrowserOpener
	Out          io.Writer
	Logger       *log.Logger
}

// NoCache wraps handler so that every response, including errors, tells the browser not to
// cache it.
func NoCache(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		handler.ServeHTTP(w, r)
	})
}

// Handler returns the file-serving handler for dir.
func Handler(dir string) http.Handler {
	return NoCache(http.FileServer(http.Dir(dir)))
}

// Run binds the port and serves until ctx is cancelled, then shuts down gracefully. It returns
// nil after an orderly shutdown.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		return fmt.Errorf("can't listen on port %d: %w", s.Port, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is like Run but uses an existing listener, which it closes on return. The printed URLs
// use the listener's port if it is a TCP listener, and Port otherwise.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	port := s.Port
	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	baseURL := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(out, "Server running at %s/\n", color.CyanString(baseURL))
	fmt.Fprintf(out, "Test page: %s%s\n", baseURL, TestPagePath)
	fmt.Fprintf(out, "Main page: %s%s\n", baseURL, MainPagePath)
	fmt.Fprintln(out, "Press Ctrl+C to stop the server")

	server := &http.Server{Handler: Handler(s.Dir), ReadHeaderTimeout: 10 * time.Second}

	if s.OpenBrowser != nil {
		pageURL := baseURL + TestPagePath
		timer := time.AfterFunc(s.BrowserDelay, func() {
			if err := s.OpenBrowser(pageURL); err != nil {
				logger.Printf("Could not open browser at %s: %s", pageURL, err)
			}
		})
		defer timer.Stop()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	fmt.Fprintln(out, "\nServer stopped.")
	return nil
}
