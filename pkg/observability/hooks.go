// Package observability provides hooks for metrics, tracing, and logging.
//
// Renderers and generators emit start/complete events through the registered
// hooks. The defaults are no-ops, so library callers pay nothing unless a host
// registers an implementation at startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, kind, points)
//	// ... draw and encode ...
//	observability.Render().OnRenderComplete(ctx, kind, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the chart renderer.
type RenderHooks interface {
	// OnRenderStart records the start of a render for a chart kind with the
	// given number of data points.
	OnRenderStart(ctx context.Context, kind string, points int)

	// OnRenderComplete records the end of a render. size is the encoded PNG
	// size in bytes (zero on failure).
	OnRenderComplete(ctx context.Context, kind string, size int, duration time.Duration, err error)
}

// =============================================================================
// Tone Hooks
// =============================================================================

// ToneHooks receives events from the tone generator.
type ToneHooks interface {
	// OnToneGenerated records a synthesized buffer.
	OnToneGenerated(ctx context.Context, frequency float64, samples int, duration time.Duration)

	// OnToneWritten records an encoded WAV stream.
	OnToneWritten(ctx context.Context, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopToneHooks is a no-op implementation of ToneHooks.
type NoopToneHooks struct{}

func (NoopToneHooks) OnToneGenerated(context.Context, float64, int, time.Duration) {}
func (NoopToneHooks) OnToneWritten(context.Context, int, error)                    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	toneHooks   ToneHooks   = NoopToneHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetToneHooks registers custom tone hooks.
func SetToneHooks(h ToneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		toneHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Tone returns the registered tone hooks.
func Tone() ToneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return toneHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	toneHooks = NoopToneHooks{}
}
