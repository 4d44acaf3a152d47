package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/editor"
	"github.com/matzehuels/floorplan/pkg/floor"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/server"
)

// redisKeyPrefix namespaces frame-cache keys in a shared Redis.
const redisKeyPrefix = appName + ":"

type serveOpts struct {
	addr    string
	redis   string
	save    string
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [plan]",
		Short: "Serve the floor plan editor API",
		Long: `Start the HTTP editor API for a plan.

Without a plan argument the editor starts with the sample floor. Rendered frames
are cached in Redis when --redis is set, otherwise in the user cache directory.
Saved snapshots are written to --save.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePlanFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runServe(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the frame cache")
	cmd.Flags().StringVar(&opts.save, "save", "", "snapshot file written on save (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the frame cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path string, opts serveOpts) error {
	cfg, theme, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.addr == "" {
		opts.addr = cfg.Server.Addr
	}
	if opts.redis == "" {
		opts.redis = cfg.Server.RedisAddr
	}
	if opts.save == "" {
		opts.save = cfg.Server.SavePath
	}

	plan := floor.SamplePlan()
	if path != "" {
		if plan, err = pipeline.Load(ctx, path); err != nil {
			return err
		}
	}

	fc, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(fc, nil, c.Logger)
	defer runner.Close()
	if cfg.Server.CacheTTLSeconds > 0 {
		runner.TTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	}

	ed := editor.New(plan, cfg.Canvas,
		editor.WithLogger(c.Logger),
		editor.WithTheme(theme),
		editor.WithHooks(editor.Hooks{
			OnTableMoved: func(id string, x, y float64) {
				c.Logger.Debug("table moved", "id", id, "x", x, "y", y)
			},
			OnSave: func(s floor.Snapshot) error {
				return pkgio.SaveSnapshot(s, opts.save)
			},
		}),
	)

	counters := observability.NewCounters()
	observability.Install(counters)
	defer observability.Reset()

	srv := server.New(ed,
		server.WithLogger(c.Logger),
		server.WithRunner(runner),
		server.WithCounters(counters),
	)

	printInfo("Serving %s on %s", planLabel(plan, path), opts.addr)
	printDetail("Snapshots: %s", opts.save)
	return srv.ListenAndServe(ctx, opts.addr)
}

// serveCache picks the frame cache: Redis when configured, the file cache
// otherwise.
func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		rc, err := cache.NewRedisCache(ctx, opts.redis, cache.WithKeyPrefix(redisKeyPrefix))
		if err != nil {
			return nil, err
		}
		c.Logger.Info("frame cache", "backend", "redis", "addr", opts.redis)
		return rc, nil
	}
	fc, err := newCache(false)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("frame cache", "backend", "file")
	return fc, nil
}

func planLabel(plan *floor.Plan, path string) string {
	if path == "" {
		return "the sample floor"
	}
	if plan.Name != "" {
		return plan.Name
	}
	return path
}
