package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marquito38/meow-macros/internal/adapters/render"
	"github.com/marquito38/meow-macros/internal/domain"
)

const barWidth = 24

type RenderOptions struct {
	Routines []domain.Routine
	// CalorieGoal is the unadjusted daily goal shown next to the adjusted one.
	CalorieGoal int
}

func Render(summary domain.DailySummary, opts RenderOptions) (string, error) {
	s := render.NewStyles()
	return render.Run(func() string {
		return renderView(summary, opts, s)
	})
}

func renderView(summary domain.DailySummary, opts RenderOptions, s render.Styles) string {
	lines := []string{
		s.Title.Render(fmt.Sprintf("%s %s", summary.Day.Weekday(), summary.Day)),
		calorieLine(summary, opts, s),
	}

	for _, macro := range summary.Macros {
		lines = append(lines, macroLine(macro, s))
	}

	lines = append(lines, s.Section.Render(s.Header.Render("Food")))
	if len(summary.Entries) == 0 {
		lines = append(lines, s.Empty.Render("  nothing logged yet"))
	}
	for _, entry := range summary.Entries {
		lines = append(lines, entryLine(entry, s))
	}

	if len(summary.Sessions) > 0 {
		lines = append(lines, s.Section.Render(s.Header.Render("Training")))
		for _, session := range summary.Sessions {
			lines = append(lines, sessionLine(session, opts.Routines, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func calorieLine(summary domain.DailySummary, opts RenderOptions, s render.Styles) string {
	parts := []string{
		s.Key.Render("calories:"),
		s.Detail.Render(fmt.Sprintf("%d eaten", summary.CaloriesIn)),
	}
	if summary.Burned > 0 {
		parts = append(parts, s.Detail.Render(fmt.Sprintf("+%d burned", summary.Burned)))
	}

	goal := fmt.Sprintf("goal %d", summary.AdjustedGoal)
	if opts.CalorieGoal > 0 && opts.CalorieGoal != summary.AdjustedGoal {
		goal = fmt.Sprintf("goal %d (base %d)", summary.AdjustedGoal, opts.CalorieGoal)
	}
	parts = append(parts, s.Meta.Render(goal))

	if summary.Remaining < 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d over", -summary.Remaining)))
	} else {
		parts = append(parts, s.Good.Render(fmt.Sprintf("%d left", summary.Remaining)))
	}

	return strings.Join(parts, " ")
}

func macroLine(macro domain.MacroProgress, s render.Styles) string {
	label := s.Key.Render(fmt.Sprintf("%-8s", strings.ToLower(macro.Name)))
	bar := render.ProgressBar(macro.Percent(), macro.Over(), barWidth, s)

	amount := fmt.Sprintf("%s/%sg", render.Grams(macro.Eaten), render.Grams(macro.Target))
	meta := s.Meta.Render(amount)
	if macro.Over() {
		meta = s.Warning.Render(amount)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", meta)
}

func entryLine(entry domain.LogEntry, s render.Styles) string {
	line := fmt.Sprintf("  %s %s %s",
		s.Name.Render(entry.Name),
		s.Detail.Render(amountLabel(entry.Amount, entry.Unit)),
		s.Meta.Render(fmt.Sprintf("%d kcal  c%s p%s f%s fib%s",
			entry.Calories(),
			render.Grams(entry.Nutrients.Carbs),
			render.Grams(entry.Nutrients.Protein),
			render.Grams(entry.Nutrients.Fat),
			render.Grams(entry.Nutrients.Fiber),
		)),
	)
	if entry.Category != "" {
		line += " " + s.Empty.Render("("+entry.Category+")")
	}
	return line + " " + s.BarTextFaint.Render(shortID(entry.ID))
}

func sessionLine(session domain.WorkoutSession, routines []domain.Routine, s render.Styles) string {
	return fmt.Sprintf("  %s %s %s",
		s.Name.Render(domain.RoutineName(routines, session.RoutineID)),
		s.Detail.Render(fmt.Sprintf("%s min, %d kcal, volume %s",
			render.Grams(session.DurationMinutes), session.CaloriesBurned, render.Grams(session.Volume()))),
		s.BarTextFaint.Render(shortID(session.ID)),
	)
}

func amountLabel(amount float64, unit domain.ReferenceUnit) string {
	if unit == domain.UnitCount {
		if amount == 1 {
			return "1 unit"
		}
		return render.Grams(amount) + " units"
	}
	return render.Grams(amount) + "g"
}

// shortID shows the tail of an id. Commands accept it in place of the full id.
func shortID(id string) string {
	if len(id) <= 8 {
		return "#" + id
	}
	return "#" + id[len(id)-8:]
}
