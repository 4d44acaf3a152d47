package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/render/paint"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the server use it so frames are cached the same way.
//
// The Runner is stateless except for the cache, logger, canvas and theme.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Canvas config.Canvas
	Theme  paint.Theme
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The canvas and theme start at their defaults.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Canvas: config.Default(),
		Theme:  paint.DefaultTheme(),
		TTL:    cache.TTLFrame,
	}
}

// Execute loads the plan at path and renders it with caching.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	plan, err := Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	r.Logger.Info("loaded plan",
		"name", plan.Name,
		"tables", len(plan.Tables),
		"elements", len(plan.Elements),
		"duration", loadTime)

	result, err := r.RenderPlan(ctx, plan, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// RenderPlan renders an in-memory plan with caching.
func (r *Runner) RenderPlan(ctx context.Context, plan *floor.Plan, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	artifacts, hit, hash, err := r.RenderWithCacheInfo(ctx, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result := &Result{
		PlanHash:  hash,
		Artifacts: artifacts,
		Stats: Stats{
			Tables:     len(plan.ActiveTables()),
			Elements:   len(plan.Elements),
			RenderTime: time.Since(start),
		},
		CacheInfo: CacheInfo{RenderHit: hit},
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders plan and reports whether every artifact came
// from the cache. It also returns the plan hash used for the cache keys.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, plan *floor.Plan, opts Options) (map[string][]byte, bool, string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, "", err
	}
	hooks := observability.Cache()

	hash, err := PlanHash(plan)
	if err != nil {
		return nil, false, "", fmt.Errorf("hash plan: %w", err)
	}
	theme := r.Theme.String()

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.FrameKey(hash, opts.FrameKeyOpts(format, theme))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "err", err)
			}
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, "frame")
				break
			}
			hooks.OnCacheHit(ctx, "frame")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, hash, nil
		}
	}

	rendered, err := r.render(ctx, plan, opts)
	if err != nil {
		return nil, false, hash, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.FrameKey(hash, opts.FrameKeyOpts(format, theme))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, "frame", len(data))
	}

	return rendered, false, hash, nil
}

func (r *Runner) render(ctx context.Context, plan *floor.Plan, opts Options) (map[string][]byte, error) {
	hooks := observability.Render()

	hooks.OnComposeStart(ctx, len(plan.ActiveTables()), len(plan.Elements))
	hooks.OnEncodeStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(plan, r.Canvas, r.Theme, opts)

	elapsed := time.Since(start)
	hooks.OnComposeComplete(ctx, elapsed)
	hooks.OnEncodeComplete(ctx, opts.Formats, elapsed, err)

	opts.Logger.Debug("painted frame", "formats", opts.Formats, "duration", elapsed)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
