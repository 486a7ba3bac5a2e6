package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquito38/meow-macros/internal/domain"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRenderDailySummary(t *testing.T) {
	s := domain.NewState(domain.StarterCatalog())
	s, _, err := domain.LogFood(s, domain.LogFoodCommand{
		Day: "2026-03-14", EntryID: "e1", Name: "Banana", Amount: 150, Category: "Breakfast", At: testNow,
	})
	require.NoError(t, err)
	s, _, err = domain.FinishSession(s, domain.FinishSessionCommand{
		Day: "2026-03-14", SessionID: "s1", RoutineID: "A", DurationMinutes: 45, BurnRate: 6,
		Exercises: map[string][]domain.Set{"DB Goblet Squats": {{Weight: 25, Reps: 100}}},
	})
	require.NoError(t, err)

	output, err := Render(domain.SummarizeDay(s, "2026-03-14", domain.DefaultGoals()), RenderOptions{
		Routines:    domain.DefaultRoutines(),
		CalorieGoal: domain.DefaultCalorieGoal,
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Sat 2026-03-14")
	assert.Contains(t, output, "148 eaten")
	assert.Contains(t, output, "+270 burned")
	assert.Contains(t, output, "goal 1915 (base 1645)")
	assert.Contains(t, output, "1767 left")
	assert.Contains(t, output, "34.5/160g")
	assert.Contains(t, output, "Banana")
	assert.Contains(t, output, "150g")
	assert.Contains(t, output, "(Breakfast)")
	assert.Contains(t, output, "#e1")
	assert.Contains(t, output, "Workout A (Push Focus)")
	assert.Contains(t, output, "volume 2500")
}

func TestRenderEmptyDay(t *testing.T) {
	s := domain.NewState(domain.StarterCatalog())

	output, err := Render(domain.SummarizeDay(s, "2026-03-14", domain.DefaultGoals()), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "0 eaten")
	assert.Contains(t, output, "1645 left")
	assert.Contains(t, output, "nothing logged yet")
	assert.NotContains(t, output, "Training")
	assert.NotContains(t, output, "burned")
}

func TestRenderOverGoal(t *testing.T) {
	s := domain.NewState(domain.StarterCatalog())
	s, _, err := domain.LogFood(s, domain.LogFoodCommand{
		Day: "2026-03-14", EntryID: "e1", Name: "Avocado", Amount: 1500, At: testNow,
	})
	require.NoError(t, err)

	output, err := Render(domain.SummarizeDay(s, "2026-03-14", domain.DefaultGoals()), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "over")
	assert.Contains(t, output, "220.5/45g")
}

func TestAmountLabel(t *testing.T) {
	assert.Equal(t, "1 unit", amountLabel(1, domain.UnitCount))
	assert.Equal(t, "3 units", amountLabel(3, domain.UnitCount))
	assert.Equal(t, "12.5g", amountLabel(12.5, domain.UnitMass))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "#e1", shortID("e1"))
	assert.Equal(t, "#89abcdef", shortID("01234567-89abcdef"))
}
