package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/room-ranker/pkg/core/ranker"
	"github.com/jakechorley/room-ranker/pkg/core/services"
)

// DemoCmd creates the demo command
func DemoCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Rank the six built-in demo rooms",
		Long: `Rank the built-in demonstration rooms (101-106) for a fixed preference set
and history. Runs with variety 4 unless --variety is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := services.DemoScenario()

			if err := applyRankFlags(cmd, &scenario.Request); err != nil {
				return err
			}

			app.Logger.Debug("demo command",
				zap.Int("variety", scenario.Request.Variety),
				zap.Bool("seeded", scenario.Request.Seed != nil))

			result, err := services.RecommendRooms(app.Logger, scenario.Catalog, scenario.Request)
			if err != nil {
				return err
			}

			return printRanking(cmd, app.Out, result.Results)
		},
	}

	addRankFlags(cmd)

	return cmd
}

// addRankFlags registers the flags shared by the ranking commands
func addRankFlags(cmd *cobra.Command) {
	cmd.Flags().Int("variety", 0, "Variety level from 0 (routine) to 4 (most random)")
	cmd.Flags().Int64("seed", 0, "Seed for the variety perturbation")
	cmd.Flags().Bool("summary", false, "Print a summary table after the results")
}

// printRanking prints the ranked rooms and, with --summary, the movement table
func printRanking(cmd *cobra.Command, out io.Writer, results []ranker.ScoredRoom) error {
	summary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return err
	}

	printRankedRooms(out, results)
	if summary {
		printRankingSummary(out, results)
	}
	fmt.Fprintln(out)

	return nil
}

// applyRankFlags overrides request fields with the flags the user set
func applyRankFlags(cmd *cobra.Command, req *services.RecommendationRequest) error {
	flags := cmd.Flags()

	if flags.Changed("variety") {
		variety, err := flags.GetInt("variety")
		if err != nil {
			return err
		}
		req.Variety = variety
	}

	if flags.Changed("seed") {
		seed, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}
		req.Seed = &seed
	}

	return nil
}
