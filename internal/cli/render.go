package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file (single format) or base path
	formats  string  // comma-separated output formats
	zoom     float64 // viewport zoom, clamped to the canvas limits
	panX     float64 // viewport pan in screen units
	panY     float64
	selected string  // table ID drawn with the selection ring
	seed     uint64  // seed for procedural decoration
	scale    float64 // PNG device pixel ratio
	noCache  bool    // disable the frame cache
	refresh  bool    // re-render even when a cached frame exists
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		zoom:  1,
		seed:  pipeline.DefaultSeed,
		scale: pipeline.DefaultPixelRatio,
	}

	cmd := &cobra.Command{
		Use:   "render [plan]",
		Short: "Render a floor plan to SVG, PNG or JSON",
		Long: `Render a floor plan document (JSON or TOML) to one or more output formats.

Excluded tables are not drawn. Frames are cached under the user cache
directory, keyed by plan content and view options.`,
		Example: `  floorplan render terraza.json
  floorplan render terraza.toml -f svg,png -o out/terraza
  floorplan render terraza.json --zoom 1.5 --select table-3`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "viewport zoom")
	cmd.Flags().Float64Var(&opts.panX, "pan-x", 0, "horizontal pan in screen units")
	cmd.Flags().Float64Var(&opts.panY, "pan-y", 0, "vertical pan in screen units")
	cmd.Flags().StringVar(&opts.selected, "select", "", "table ID to highlight")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for procedural decoration")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel ratio")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the frame cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render cached frames")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	cfg, theme, err := c.loadConfig()
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Formats:    parseFormats(opts.formats),
		Zoom:       opts.zoom,
		PanX:       opts.panX,
		PanY:       opts.panY,
		Selected:   opts.selected,
		Seed:       opts.seed,
		PixelRatio: opts.scale,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}
	if err := pipeline.ValidateFormats(popts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache, cfg.Canvas, theme)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()
	elapsed := startTimer(c.Logger, "render")

	result, err := runner.Execute(ctx, input, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths, err := writeArtifacts(result.Artifacts, opts.output, input)
	if err != nil {
		return err
	}
	elapsed.stop("plan", input, "files", len(paths))

	printSuccess("Rendered %s", input)
	printStats(result.Stats.Tables, result.Stats.Elements, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes each rendered format to <base>.<format>.
func writeArtifacts(artifacts map[string][]byte, output, input string) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	base := basePath(output, input)
	var paths []string
	for _, f := range formats {
		path := fmt.Sprintf("%s.%s", base, f)
		if path == input {
			return paths, fmt.Errorf("refusing to overwrite input %s", input)
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
