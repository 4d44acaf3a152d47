package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/floor"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// Load reads a plan document and reports the load to the render hooks.
func Load(ctx context.Context, path string) (*floor.Plan, error) {
	hooks := observability.Render()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	plan, err := pkgio.ImportFile(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, len(plan.Tables), len(plan.Elements), time.Since(start), nil)
	return plan, nil
}

// PlanHash returns the content hash of plan's canonical JSON encoding.
func PlanHash(plan *floor.Plan) (string, error) {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(plan, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}
