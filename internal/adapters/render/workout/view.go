package workout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/marquito38/meow-macros/internal/adapters/render"
	"github.com/marquito38/meow-macros/internal/application"
	"github.com/marquito38/meow-macros/internal/domain"
)

func Render(sheet application.WorkoutSheet) (string, error) {
	s := render.NewStyles()
	return render.Run(func() string {
		return renderView(sheet, s)
	})
}

func renderView(sheet application.WorkoutSheet, s render.Styles) string {
	lines := []string{
		s.Title.Render(sheet.Routine.Name),
		s.Header.Render("volume so far: " + render.Grams(sheet.Volume)),
	}

	for _, row := range sheet.Rows {
		lines = append(lines, s.Section.Render(exerciseHeader(row, s)))
		for i, set := range row.Sets {
			lines = append(lines, setLine(i, set, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func exerciseHeader(row application.ExerciseRow, s render.Styles) string {
	last := s.Good.Render(row.Last)
	if row.HasHistory {
		last = s.Meta.Render("last: " + row.Last)
	}
	return fmt.Sprintf("%s %s %s",
		s.Name.Render(row.Exercise.Name),
		s.Key.Render(row.Exercise.Target),
		last,
	)
}

func setLine(index int, set domain.Set, s render.Styles) string {
	if set.Weight == 0 && set.Reps == 0 {
		return s.Empty.Render(fmt.Sprintf("  %d  -  %s", index+1, set.Difficulty))
	}
	return fmt.Sprintf("  %s  %s  %s",
		s.Key.Render(fmt.Sprintf("%d", index+1)),
		s.Detail.Render(set.String()),
		set.Difficulty,
	)
}
