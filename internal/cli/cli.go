// Package cli implements the floorplan command-line interface.
//
// # Commands
//
//   - render: paint a plan document to SVG, PNG or JSON
//   - validate: check every table configuration and element in a plan
//   - tables: interactive table list (exclude, restore, save)
//   - serve: run the HTTP editor API
//   - cache: manage the rendered-frame cache
//
// Every command accepts --verbose (-v) for debug logging and --config for a
// TOML configuration file. [ExitCode] maps a command error onto the process
// exit status.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/render/paint"
)

const appName = "floorplan"

const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state shared by every command.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ExitCode returns the process exit status for an error returned by the root
// command: 0 for nil, 130 after an interrupt, 2 for a plan that failed
// validation and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, errInvalidPlan):
		return 2
	}
	return 1
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Floorplan renders and edits restaurant floor plans",
		Long:         `Floorplan renders restaurant floor plans (tables, walls, doors, plants and other fixtures) to SVG and PNG, validates plan documents, and serves an interactive editor API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "TOML configuration file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if c.verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	root.AddCommand(
		c.renderCommand(),
		c.validateCommand(),
		c.tablesCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)
	return root
}

// loadConfig reads the configuration and resolves the theme overrides.
func (c *CLI) loadConfig() (*config.Config, paint.Theme, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, paint.Theme{}, err
	}
	theme, err := paint.DefaultTheme().Override(cfg.Theme)
	if err != nil {
		return nil, paint.Theme{}, err
	}
	c.Logger.Debug("configuration loaded", "canvas", cfg.Canvas, "theme", theme)
	return cfg, theme, nil
}

// newRunner returns a runner drawing with canvas and theme, caching frames
// in the user cache directory unless noCache is set.
func (c *CLI) newRunner(noCache bool, canvas config.Canvas, theme paint.Theme) (*pipeline.Runner, error) {
	fc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(fc, nil, c.Logger)
	r.Canvas = canvas
	r.Theme = theme
	return r, nil
}

// newCache falls back to no caching when there is no home directory.
func newCache(noCache bool) (cache.Cache, error) {
	dir, err := cacheDir()
	if noCache || err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir is $XDG_CACHE_HOME/floorplan, or ~/.cache/floorplan on every
// platform when XDG_CACHE_HOME is unset.
func cacheDir() (string, error) {
	root := os.Getenv("XDG_CACHE_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(home, ".cache")
	}
	return filepath.Join(root, appName), nil
}

// parseFormats splits a comma-separated --format value. Empty means SVG.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath is the output path without a format extension. With no output it
// is the input path without its extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
