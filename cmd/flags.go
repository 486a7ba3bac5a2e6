package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/domain"
)

// addDateFlag registers --date. An empty value means today.
func addDateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "date", "", "Day as YYYY-MM-DD (defaults to today)")
}

func parseDateFlag(raw string) (domain.DayKey, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return domain.ParseDayKey(raw)
}

type nutrientFlags struct {
	carbs   float64
	protein float64
	fat     float64
	fiber   float64
}

func (f *nutrientFlags) register(cmd *cobra.Command, help string) {
	cmd.Flags().Float64Var(&f.carbs, "carbs", 0, "Carbohydrates in grams "+help)
	cmd.Flags().Float64Var(&f.protein, "protein", 0, "Protein in grams "+help)
	cmd.Flags().Float64Var(&f.fat, "fat", 0, "Fat in grams "+help)
	cmd.Flags().Float64Var(&f.fiber, "fiber", 0, "Fiber in grams "+help)
}

func (f nutrientFlags) nutrients() domain.Nutrients {
	return domain.Nutrients{Carbs: f.carbs, Protein: f.protein, Fat: f.fat, Fiber: f.fiber}
}

// parseUnitFlag accepts an empty value, which keeps the catalog's own unit.
func parseUnitFlag(raw string) (domain.ReferenceUnit, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return domain.ParseReferenceUnit(raw)
}

func formatAmount(amount float64, unit domain.ReferenceUnit) string {
	value := strings.TrimSuffix(fmt.Sprintf("%.1f", amount), ".0")
	if unit == domain.UnitCount {
		if amount == 1 {
			return value + " unit"
		}
		return value + " units"
	}
	return value + "g"
}

func formatMacros(n domain.Nutrients) string {
	return fmt.Sprintf("c%s p%s f%s fib%s", grams(n.Carbs), grams(n.Protein), grams(n.Fat), grams(n.Fiber))
}

func grams(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
