package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/room-ranker/pkg/core/availability"
	"github.com/jakechorley/room-ranker/pkg/core/services"
)

// RankCmd creates the rank command
func RankCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the configured rooms for the configured profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			catalog, err := services.CatalogFromConfig(cfg)
			if err != nil {
				return err
			}

			req, err := services.RequestFromConfig(cfg)
			if err != nil {
				return err
			}

			if err := applyRankFlags(cmd, &req); err != nil {
				return err
			}

			if cmd.Flags().Changed("date") {
				date, err := parseDateFlag(cmd)
				if err != nil {
					return err
				}
				req.Date = date
			}

			app.Logger.Debug("rank command",
				zap.Int("catalog_size", len(catalog)),
				zap.Int("variety", req.Variety))

			result, err := services.RecommendRooms(app.Logger, catalog, req)
			if err != nil {
				return err
			}

			if len(result.Results) == 0 {
				fmt.Fprintln(app.Out, "No free rooms to rank.")
				return nil
			}

			return printRanking(cmd, app.Out, result.Results)
		},
	}

	addRankFlags(cmd)
	cmd.Flags().String("date", "", "Only rank rooms free on this date (YYYY-MM-DD)")

	return cmd
}

// RoomsCmd creates the rooms command
func RoomsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the configured rooms, optionally only those free on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			catalog, err := services.CatalogFromConfig(cfg)
			if err != nil {
				return err
			}

			date, err := parseDateFlag(cmd)
			if err != nil {
				return err
			}

			rooms, err := services.ListRooms(catalog, date)
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			app.Logger.Info("Rooms listed", zap.Int("count", len(rooms)))

			printRooms(app.Out, rooms)

			return nil
		},
	}

	cmd.Flags().String("date", "", "Only list rooms free on this date (YYYY-MM-DD)")

	return cmd
}

// parseDateFlag returns nil when --date is empty
func parseDateFlag(cmd *cobra.Command) (*time.Time, error) {
	raw, err := cmd.Flags().GetString("date")
	if err != nil || raw == "" {
		return nil, err
	}

	date, err := availability.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
