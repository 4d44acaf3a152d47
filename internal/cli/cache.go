package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the rendered frame cache",
		Long: `Rendered frames are cached on disk, keyed by the plan contents and the
view they were rendered at. Use "render --no-cache" to bypass the cache for a
single run.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show where frames are cached and how much space they use",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFileCache(func(fc *cache.FileCache) error {
					u, err := fc.Usage()
					if err != nil {
						return err
					}
					printKeyValue("Directory", fc.Dir())
					printKeyValue("Frames", fmt.Sprint(u.Frames))
					printKeyValue("Size", formatBytes(u.Bytes))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all cached frames",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFileCache(func(fc *cache.FileCache) error {
					removed, err := fc.Clear()
					if err != nil {
						return fmt.Errorf("clear %s: %w", fc.Dir(), err)
					}
					printSuccess("Cleared %s (%s)", plural(removed.Frames, "cached frame"), formatBytes(removed.Bytes))
					printDetail("Directory: %s", fc.Dir())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cacheDir()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

// withFileCache opens the CLI frame cache without creating it. A missing
// directory is reported as an empty cache.
func withFileCache(fn func(*cache.FileCache) error) error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo("Frame cache is empty")
		return nil
	}
	fc, err := cache.OpenFileCache(dir)
	if err != nil {
		return err
	}
	return fn(fc)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
