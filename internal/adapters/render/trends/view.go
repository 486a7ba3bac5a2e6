package trends

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/marquito38/meow-macros/internal/adapters/render"
	"github.com/marquito38/meow-macros/internal/application"
	"github.com/marquito38/meow-macros/internal/domain"
)

const barWidth = 20

func Render(report application.TrendReport) (string, error) {
	s := render.NewStyles()
	return render.Run(func() string {
		return renderView(report, s)
	})
}

func renderView(report application.TrendReport, s render.Styles) string {
	lines := []string{
		s.Title.Render(fmt.Sprintf("Last %d days", report.Series.Len())),
		s.Header.Render("calories in / out and training volume"),
	}

	maxCalories := float64(report.Series.MaxCalories())
	maxVolume := report.Series.MaxVolume()
	for _, point := range report.Series.Points {
		lines = append(lines, pointLines(point, maxCalories, maxVolume, s)...)
	}

	lines = append(lines, s.Section.Render(s.Header.Render("Recent sessions")))
	if len(report.Recent) == 0 {
		lines = append(lines, s.Empty.Render("  no sessions recorded yet"))
	}
	for _, summary := range report.Recent {
		lines = append(lines, sessionLine(summary, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pointLines(point domain.TrendPoint, maxCalories, maxVolume float64, s render.Styles) []string {
	label := s.Key.Render(fmt.Sprintf("%s %s", point.Day.Weekday(), point.Day[5:]))
	pad := s.Key.Render("         ")

	in := lipgloss.JoinHorizontal(lipgloss.Top,
		label, " ",
		render.HBar(float64(point.CaloriesIn), maxCalories, barWidth, s.BarFill),
		" ", s.Detail.Render(fmt.Sprintf("in  %d", point.CaloriesIn)),
	)
	out := lipgloss.JoinHorizontal(lipgloss.Top,
		pad, " ",
		render.HBar(float64(point.CaloriesOut), maxCalories, barWidth, s.BarBurn),
		" ", s.Meta.Render(fmt.Sprintf("out %d", point.CaloriesOut)),
	)
	lines := []string{in, out}

	if point.Volume > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			pad, " ",
			render.HBar(point.Volume, maxVolume, barWidth, s.BarVolume),
			" ", s.Meta.Render("vol "+render.Grams(point.Volume)),
		))
	}
	return lines
}

func sessionLine(summary domain.SessionSummary, s render.Styles) string {
	return fmt.Sprintf("  %s %s %s",
		s.Key.Render(summary.Day.String()),
		s.Name.Render(summary.RoutineName),
		s.Detail.Render(fmt.Sprintf("%s min, %d kcal, volume %s",
			render.Grams(summary.Session.DurationMinutes), summary.Session.CaloriesBurned, render.Grams(summary.Volume))),
	)
}
