package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/editor"
	"github.com/matzehuels/floorplan/pkg/floor"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// tablesCommand creates the tables command.
func (c *CLI) tablesCommand() *cobra.Command {
	var (
		list     bool
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "tables [plan]",
		Short: "List, exclude and restore the tables of a plan",
		Long: `Open an interactive list of the tables in a plan.

Keys:
  ↑/↓  move the cursor
  x    exclude the table from the canvas
  r    restore an excluded table
  s    save a snapshot of the visible floor
  w    write the plan back to its file
  q    quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, theme, err := c.loadConfig()
			if err != nil {
				return err
			}
			plan, err := pipeline.Load(cmd.Context(), path)
			if err != nil {
				return err
			}

			if list {
				fmt.Println(renderTableList(plan.Tables, -1, 0, len(plan.Tables)))
				return nil
			}

			if snapshot == "" {
				snapshot = cfg.Server.SavePath
			}
			ed := editor.New(plan, cfg.Canvas,
				editor.WithLogger(c.Logger),
				editor.WithTheme(theme),
				editor.WithHooks(editor.Hooks{
					OnSave: func(s floor.Snapshot) error { return pkgio.SaveSnapshot(s, snapshot) },
				}),
			)

			model := NewTableListModel(ed, path)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(TableListModel); ok && m.Dirty {
				printWarning("Quit without writing changes to %s", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the tables and exit")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "snapshot file written by 's' (default from config)")

	return cmd
}
