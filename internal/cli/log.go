// Package cli implements the nodeedit command-line interface.
//
// This package provides commands for inspecting the nodes derived from a JSON
// document and for replacing the JSON value behind a node, either through an
// interactive terminal UI or from scripts. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - edit: Browse nodes and edit them in a dialog
//   - show: Print a node's content and path
//   - set: Replace a node's value non-interactively
//   - nodes: List the derived nodes
//   - config: Inspect the configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and dialog and store events are logged
// through the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level along with the elapsed time since progress was created.
// Example output: "Saved $["a"] (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// debug is like done but logs at debug level.
func (p *progress) debug(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks logs dialog and store events. Failures are logged as warnings,
// everything else at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnEditStart(_ context.Context, path string) {
	h.logger.Debug("edit started", "path", path)
}

func (h *logHooks) OnEditCancel(_ context.Context, path string) {
	h.logger.Debug("edit cancelled", "path", path)
}

func (h *logHooks) OnSave(_ context.Context, path string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("saved", "path", path, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnRead(_ context.Context, backend string, size int, d time.Duration, err error) {
	h.storeEvent("read", backend, size, d, err)
}

func (h *logHooks) OnWrite(_ context.Context, backend string, size int, d time.Duration, err error) {
	h.storeEvent("write", backend, size, d, err)
}

func (h *logHooks) storeEvent(op, backend string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("store "+op+" failed", "backend", backend, "err", err)
		return
	}
	h.logger.Debug("store "+op, "backend", backend, "bytes", size, "took", d.Round(time.Microsecond))
}
