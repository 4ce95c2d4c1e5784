// Package cli implements the ustar command-line interface.
//
// This package provides commands for inspecting and verifying unitig files,
// spelling walks, computing path covers and rendering graphs. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - stats: Print aggregate statistics of a unitig file
//   - verify: Check every arc overlap and, optionally, the round trip
//   - spell: Spell a walk such as 3+,5-,7+ into a contig with counts
//   - cover: Compute a path cover and write simplitigs and counts
//   - render: Draw the graph as SVG, PNG, PDF or DOT
//   - cache, config: Manage the result cache and inspect the configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and pipeline and cache events are logged
// at debug level through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ustar/pkg/observability"
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Covered 1204 unitigs (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
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

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)

func (h logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading", "path", path)
}

func (h logHooks) OnLoadComplete(_ context.Context, path string, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "duration", d, "error", err)
		return
	}
	h.logger.Debug("loaded", "path", path, "nodes", nodes, "duration", d)
}

func (h logHooks) OnVerifyStart(_ context.Context, arcs int) {
	h.logger.Debug("verifying overlaps", "arcs", arcs)
}

func (h logHooks) OnVerifyComplete(_ context.Context, checked, failed int, d time.Duration, err error) {
	h.logger.Debug("verified", "checked", checked, "failed", failed, "duration", d, "error", err)
}

func (h logHooks) OnCoverStart(_ context.Context, policy string, nodes int) {
	h.logger.Debug("covering", "policy", policy, "nodes", nodes)
}

func (h logHooks) OnCoverComplete(_ context.Context, policy string, paths int, d time.Duration, err error) {
	h.logger.Debug("covered", "policy", policy, "paths", paths, "duration", d, "error", err)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
