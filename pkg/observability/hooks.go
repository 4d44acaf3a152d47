// Package observability provides hooks for metrics, tracing, and logging.
//
// The rendering core is pure and never reports anything itself. The pipeline,
// the frame cache and the HTTP server call the hooks registered here instead,
// so a binary can attach a metrics or tracing backend without the library
// packages importing one.
//
// [Install] registers any value implementing one or more of the hook
// interfaces; [Counters] is the built-in implementation behind the server's
// /status metrics:
//
//	counters := observability.NewCounters()
//	observability.Install(counters)
//	defer observability.Reset()
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, tables, elements int, duration time.Duration, err error)

	// Compose covers one scene repaint.
	OnComposeStart(ctx context.Context, tables, elements int)
	OnComposeComplete(ctx context.Context, duration time.Duration)

	OnEncodeStart(ctx context.Context, formats []string)
	OnEncodeComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives frame cache lookups and writes. keyType names what was
// cached, currently always "frame".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives server requests. OnError is only called for failures
// answered with a 5xx status.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, path string, err error)
}

// NoopRenderHooks ignores every event. Embed it to implement a subset.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnLoadStart(context.Context, string)                                       {}
func (NoopRenderHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error)    {}
func (NoopRenderHooks) OnComposeStart(context.Context, int, int)                                  {}
func (NoopRenderHooks) OnComposeComplete(context.Context, time.Duration)                          {}
func (NoopRenderHooks) OnEncodeStart(context.Context, []string)                                   {}
func (NoopRenderHooks) OnEncodeComplete(context.Context, []string, time.Duration, error)          {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// registry is swapped as a whole so readers never see a partial update.
type registry struct {
	render RenderHooks
	cache  CacheHooks
	http   HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(*registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetRenderHooks replaces the render hooks. nil is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		update(func(r *registry) { r.render = h })
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks replaces the HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Install registers h for every hook interface it implements and reports
// whether it implemented any.
func Install(h any) bool {
	var installed bool
	update(func(r *registry) {
		if rh, ok := h.(RenderHooks); ok {
			r.render, installed = rh, true
		}
		if ch, ok := h.(CacheHooks); ok {
			r.cache, installed = ch, true
		}
		if hh, ok := h.(HTTPHooks); ok {
			r.http, installed = hh, true
		}
	})
	return installed
}

func Render() RenderHooks { return current.Load().render }
func Cache() CacheHooks   { return current.Load().cache }
func HTTP() HTTPHooks     { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{render: NoopRenderHooks{}, cache: NoopCacheHooks{}, http: NoopHTTPHooks{}})
}
