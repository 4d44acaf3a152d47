package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters tallies hook events in memory. It implements every hook interface
// and is safe for concurrent use.
type Counters struct {
	NoopRenderHooks

	frames      atomic.Int64
	renderNanos atomic.Int64
	renderErrs  atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheBytes  atomic.Int64
	requests    atomic.Int64
	serverErrs  atomic.Int64
}

// CounterSnapshot is a point-in-time copy of [Counters].
type CounterSnapshot struct {
	FramesRendered int64   `json:"framesRendered"`
	RenderErrors   int64   `json:"renderErrors"`
	AvgRenderMs    float64 `json:"avgRenderMs"`
	CacheHits      int64   `json:"cacheHits"`
	CacheMisses    int64   `json:"cacheMisses"`
	CacheHitRatio  float64 `json:"cacheHitRatio"`
	BytesCached    int64   `json:"bytesCached"`
	Requests       int64   `json:"requests"`
	ServerErrors   int64   `json:"serverErrors"`
}

func NewCounters() *Counters { return &Counters{} }

func (c *Counters) OnEncodeComplete(_ context.Context, _ []string, d time.Duration, err error) {
	if err != nil {
		c.renderErrs.Add(1)
		return
	}
	c.frames.Add(1)
	c.renderNanos.Add(int64(d))
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.cacheMisses.Add(1) }

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.cacheBytes.Add(int64(size))
}

func (c *Counters) OnRequest(context.Context, string, string)                      { c.requests.Add(1) }
func (c *Counters) OnResponse(context.Context, string, string, int, time.Duration) {}
func (c *Counters) OnError(context.Context, string, string, error)                 { c.serverErrs.Add(1) }

// Snapshot returns the current totals. Ratios and averages are zero until
// their denominators are non-zero.
func (c *Counters) Snapshot() CounterSnapshot {
	s := CounterSnapshot{
		FramesRendered: c.frames.Load(),
		RenderErrors:   c.renderErrs.Load(),
		CacheHits:      c.cacheHits.Load(),
		CacheMisses:    c.cacheMisses.Load(),
		BytesCached:    c.cacheBytes.Load(),
		Requests:       c.requests.Load(),
		ServerErrors:   c.serverErrs.Load(),
	}
	if s.FramesRendered > 0 {
		avg := time.Duration(c.renderNanos.Load() / s.FramesRendered)
		s.AvgRenderMs = float64(avg) / float64(time.Millisecond)
	}
	if lookups := s.CacheHits + s.CacheMisses; lookups > 0 {
		s.CacheHitRatio = float64(s.CacheHits) / float64(lookups)
	}
	return s
}

var (
	_ RenderHooks = (*Counters)(nil)
	_ CacheHooks  = (*Counters)(nil)
	_ HTTPHooks   = (*Counters)(nil)
)
