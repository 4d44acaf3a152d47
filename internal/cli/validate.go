package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/floor"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// errInvalidPlan is returned when a plan document has validation problems.
// The individual problems have already been printed.
var errInvalidPlan = stderrors.New("plan has validation errors")

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan]",
		Short: "Check a floor plan for invalid tables and elements",
		Long: `Validate a floor plan document.

Every table must have a name and a capacity range with 1 <= min <= max, and
table IDs must be unique. Elements must have a known type; stairs and bars
may not have negative counts.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePlanFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := pipeline.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			problems := plan.Validate()
			reportValidation(args[0], plan, problems)
			if len(problems) > 0 {
				return errInvalidPlan
			}
			return nil
		},
	}
}

func reportValidation(path string, plan *floor.Plan, problems []error) {
	if len(problems) == 0 {
		printSuccess("%s is valid", path)
		printStats(len(plan.Tables), len(plan.Elements), false)
		printKeyValue("Capacity", fmt.Sprintf("%d guests", plan.TotalCapacity()))
		if n := len(plan.ExcludedTables()); n > 0 {
			printKeyValue("Excluded", plural(n, "table"))
		}
		return
	}
	printError("%s has %s", path, plural(len(problems), "problem"))
	for _, p := range problems {
		printDetail("%v", p)
	}
	printNextStep("Edit tables interactively", "floorplan tables "+path)
}
