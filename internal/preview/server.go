// Package preview serves a generated site locally and rebuilds it whenever
// the source directory changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// debounceDelay batches bursts of file events into a single rebuild.
const debounceDelay = 300 * time.Millisecond

// Server watches a source directory and serves the built site over HTTP.
type Server struct {
	sourceDir string
	outputDir string
	port      int
	rebuild   func() error
}

// NewServer creates a preview server. rebuild is invoked for the initial
// build and after every (debounced) source change.
func NewServer(sourceDir, outputDir string, port int, rebuild func() error) *Server {
	return &Server{
		sourceDir: sourceDir,
		outputDir: outputDir,
		port:      port,
		rebuild:   rebuild,
	}
}

// Run builds the site, then serves and watches until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.rebuild(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, s.sourceDir); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           http.FileServer(http.Dir(s.outputDir)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", logfields.Port(s.port), logfields.Path(s.outputDir))
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	var debounce *time.Timer
	debounceCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)

		case serveErr := <-errCh:
			return fmt.Errorf("preview server: %w", serveErr)

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleFileEvent(watcher, ev, func() {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					select {
					case debounceCh <- struct{}{}:
					default:
					}
				})
			})

		case watchErr, ok := <-watcher.Errors:
			if ok && watchErr != nil {
				slog.Warn("Watcher error", logfields.Error(watchErr))
			}

		case <-debounceCh:
			slog.Info("Source changed, rebuilding")
			if err := s.rebuild(); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func (s *Server) handleFileEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	// New directories need their own watch before their contents show up.
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	trigger()
}

// shouldIgnoreEvent filters editor temp files and hidden files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, "~")
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") && path != root {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
