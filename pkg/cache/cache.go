// Package cache stores rendered floor-plan frames.
//
// A frame is the encoded output (SVG or PNG bytes) of composing one plan at one
// viewport with one selection. Frames are keyed by a content hash so that an
// unchanged plan rendered at the same view is served without repainting.
//
// Three backends are provided: [NullCache] disables caching, [FileCache] keeps
// entries on disk for the CLI, and [RedisCache] shares entries between server
// instances.
package cache

import (
	"context"
	"time"
)

// TTLFrame is the default lifetime of a cached frame.
const TTLFrame = 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// FrameKeyOpts holds everything besides the plan that changes a rendered frame.
type FrameKeyOpts struct {
	Format   string  `json:"format"`
	Zoom     float64 `json:"zoom"`
	PanX     float64 `json:"pan_x"`
	PanY     float64 `json:"pan_y"`
	Selected string  `json:"selected,omitempty"`
	Theme    string  `json:"theme,omitempty"`
	Seed     uint64  `json:"seed"`
	Scale    float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// FrameKey returns the key of a rendered frame of the plan with planHash.
	FrameKey(planHash string, opts FrameKeyOpts) string
}

// DefaultKeyer produces "frame:<digest>" keys. Namespacing between servers
// sharing a Redis database is left to [WithKeyPrefix].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FrameKey digests the plan hash together with opts.
func (DefaultKeyer) FrameKey(planHash string, opts FrameKeyOpts) string {
	return frameDigest("frame", planHash, opts)
}
