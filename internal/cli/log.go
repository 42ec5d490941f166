// Package cli implements the chartgen and tonegen command-line interfaces.
//
// chartgen reads one JSON chart request and prints the rendered chart as a
// single line of base64 PNG. tonegen synthesizes a sine tone and writes it as
// a 16-bit mono WAV file. Both are built using cobra and log through the
// charmbracelet/log library.
//
// # Streams
//
// Standard output carries only the payload (base64 text or WAV bytes).
// Diagnostics and logs always go to standard error.
//
// # Logging
//
// Both commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking, and
// in verbose mode render and tone events are logged through
// [observability] hooks.
//
// # Example
//
//	import "github.com/matzehuels/chartkit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.ChartCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
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
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Wrote test_alarm.wav (12ms)"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
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

// logHooks implements observability.RenderHooks and observability.ToneHooks
// by writing debug records.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(_ context.Context, kind string, points int) {
	h.logger.Debug("render start", "kind", kind, "points", points)
}

func (h *logHooks) OnRenderComplete(_ context.Context, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "kind", kind, "err", err, "elapsed", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("render complete", "kind", kind, "bytes", size, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnToneGenerated(_ context.Context, freq float64, samples int, d time.Duration) {
	h.logger.Debug("tone generated", "frequency", freq, "samples", samples, "duration", d)
}

func (h *logHooks) OnToneWritten(_ context.Context, size int, err error) {
	if err != nil {
		h.logger.Debug("wav write failed", "err", err)
		return
	}
	h.logger.Debug("wav written", "bytes", size)
}
