package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/application"
)

func newFoodCmd(app *app) *cobra.Command {
	foodCmd := &cobra.Command{
		Use:   "food",
		Short: "Log, list and remove eaten food",
	}

	foodCmd.AddCommand(
		newFoodLogCmd(app),
		newFoodRemoveCmd(app),
		newFoodListCmd(app),
	)

	return foodCmd
}

func newFoodLogCmd(app *app) *cobra.Command {
	var (
		name      string
		amount    float64
		unit      string
		category  string
		date      string
		nutrients nutrientFlags
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an amount of a food",
		Long:  "Log an amount of a food. Known foods are scaled from the catalog; for a new food the macro flags describe the logged amount and the food is added to the catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			refUnit, err := parseUnitFlag(unit)
			if err != nil {
				return err
			}

			entry, err := app.tracker.LogFood(cmd.Context(), application.LogFoodCommand{
				Day:       day,
				Name:      name,
				Amount:    amount,
				Unit:      refUnit,
				Category:  category,
				Nutrients: nutrients.nutrients(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s (%d kcal, %s) #%s\n",
				formatAmount(entry.Amount, entry.Unit), entry.Name, entry.Calories(), formatMacros(entry.Nutrients), entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Food name as stored in the catalog")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Eaten amount in grams or units")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit for a new food: g or unit")
	cmd.Flags().StringVar(&category, "category", "", "Meal category, e.g. Breakfast")
	nutrients.register(cmd, "(new foods only)")
	addDateFlag(cmd, &date)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newFoodRemoveCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a logged entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			removed, err := app.tracker.DeleteFood(cmd.Context(), day, args[0])
			if err != nil {
				return err
			}
			if !removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No entry %s on %s\n", args[0], app.dayLabel(day))
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}

func newFoodListCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries logged on a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			summary := app.tracker.Summary(day)
			for _, entry := range summary.Entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d kcal\t%s\t%s\n",
					entry.ID, entry.Name, formatAmount(entry.Amount, entry.Unit), entry.Calories(), formatMacros(entry.Nutrients), entry.Category)
			}
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}
