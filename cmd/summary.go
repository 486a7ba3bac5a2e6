package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	summaryrender "github.com/marquito38/meow-macros/internal/adapters/render/summary"
)

func newSummaryCmd(app *app) *cobra.Command {
	var (
		date   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a day's calories, macros, food and training",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			summary := app.tracker.Summary(day)
			if asJSON {
				payload, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return fmt.Errorf("encode summary: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return err
			}

			rendered, err := app.summaryRenderer(summary, summaryrender.RenderOptions{
				Routines:    app.tracker.Settings().Routines,
				CalorieGoal: app.tracker.Settings().Goals.Calories,
			})
			if err != nil {
				return fmt.Errorf("render summary: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addDateFlag(cmd, &date)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}
