package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/application"
	"github.com/marquito38/meow-macros/internal/domain"
)

func newCatalogCmd(app *app) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and edit the food catalog",
	}

	catalogCmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogAddCmd(app),
		newCatalogEditCmd(app),
	)

	return catalogCmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog foods, most recently used first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, item := range app.tracker.Catalog(search) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tper %s\t%s\t%d kcal\tprefill %s\n",
					item.Entry.Name, item.Entry.Unit.Label(), formatMacros(item.Entry.Nutrients),
					item.Entry.Nutrients.Calories(), formatAmount(item.PrefillAmount, item.Entry.Unit))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")
	return cmd
}

func newCatalogShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one catalog food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.tracker.CatalogEntry(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "name: %s\n", entry.Name)
			_, _ = fmt.Fprintf(out, "id: %s\n", entry.ID)
			_, _ = fmt.Fprintf(out, "per: %s\n", entry.Unit.Label())
			_, _ = fmt.Fprintf(out, "macros: %s\n", formatMacros(entry.Nutrients))
			_, _ = fmt.Fprintf(out, "calories: %d\n", entry.Nutrients.Calories())
			if entry.LastUsedAt.IsZero() {
				_, _ = fmt.Fprintln(out, "last used: never")
			} else {
				_, _ = fmt.Fprintf(out, "last used: %s (%s)\n",
					entry.LastUsedAt.Local().Format("2006-01-02 15:04"), formatAmount(entry.LastLoggedAmount, entry.Unit))
			}
			return nil
		},
	}
}

func newCatalogAddCmd(app *app) *cobra.Command {
	var (
		unit      string
		nutrients nutrientFlags
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a food, or overwrite the values of an existing one",
		Long:  "Add a food with values per reference amount (100 g, or one unit). An existing food with the same name keeps its id and usage history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refUnit, err := domain.ParseReferenceUnit(unit)
			if err != nil {
				return err
			}

			entry, err := app.tracker.UpsertCatalogEntry(cmd.Context(), application.UpsertCatalogCommand{
				Name:      args[0],
				Unit:      refUnit,
				Nutrients: nutrients.nutrients(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s per %s: %s (%d kcal)\n",
				entry.Name, entry.Unit.Label(), formatMacros(entry.Nutrients), entry.Nutrients.Calories())
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "g", "Reference unit: g (per 100 g) or unit (per piece)")
	nutrients.register(cmd, "per reference amount")
	return cmd
}

func newCatalogEditCmd(app *app) *cobra.Command {
	var (
		rename    string
		unit      string
		serving   float64
		nutrients nutrientFlags
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Correct a catalog food from the values on a label",
		Long:  "Correct a catalog food. The macro flags describe --serving grams (or units); they are rebased to the reference amount before they are stored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refUnit, err := parseUnitFlag(unit)
			if err != nil {
				return err
			}

			var servingSize *float64
			if cmd.Flags().Changed("serving") {
				servingSize = &serving
			}

			entry, err := app.tracker.EditCatalogEntry(cmd.Context(), application.EditCatalogCommand{
				Name:        args[0],
				NewName:     rename,
				Unit:        refUnit,
				ServingSize: servingSize,
				Nutrients:   nutrients.nutrients(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s per %s: %s (%d kcal)\n",
				entry.Name, entry.Unit.Label(), formatMacros(entry.Nutrients), entry.Nutrients.Calories())
			return nil
		},
	}

	cmd.Flags().StringVar(&rename, "rename", "", "New name")
	cmd.Flags().StringVar(&unit, "unit", "", "Switch the reference unit: g or unit")
	cmd.Flags().Float64Var(&serving, "serving", 0, "Serving size the macro flags describe (defaults to the reference amount)")
	nutrients.register(cmd, "in the serving")
	for _, name := range []string{"carbs", "protein", "fat", "fiber"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
