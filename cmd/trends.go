package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/application"
)

func newTrendsCmd(app *app) *cobra.Command {
	var (
		days   int
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show calories in and out, training volume and recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 0 || limit < 0 {
				return errors.New("--days and --limit must not be negative")
			}

			cache := application.NewTrendCache(app.tracker, days, limit)
			defer cache.Close()

			report := cache.Report()
			if asJSON {
				payload, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode trends: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return err
			}

			rendered, err := app.trendsRenderer(report)
			if err != nil {
				return fmt.Errorf("render trends: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Window size in days (defaults to 7)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of recent sessions (defaults to training.recent_limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}
