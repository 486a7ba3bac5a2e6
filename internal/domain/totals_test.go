package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDaySummary(t *testing.T) {
	summary := SummarizeDay(NewState(StarterCatalog()), testDay, DefaultGoals())

	assert.Equal(t, Nutrients{}, summary.Totals)
	assert.Equal(t, 0, summary.CaloriesIn)
	assert.Equal(t, 0, summary.Burned)
	assert.Equal(t, 1645, summary.AdjustedGoal)
	assert.Equal(t, 1645, summary.Remaining)
	require.Len(t, summary.Macros, 4)
	assert.Equal(t, 0.0, summary.Macros[0].Percent())
}

func TestDailyTotalsOrderIndependent(t *testing.T) {
	forward := NewState(StarterCatalog())
	forward = logFood(t, forward, "e1", "Banana", 150)
	forward = logFood(t, forward, "e2", "Chicken Breast", 200)
	forward = logFood(t, forward, "e3", "Avocado", 50)

	backward := NewState(StarterCatalog())
	backward = logFood(t, backward, "e3", "Avocado", 50)
	backward = logFood(t, backward, "e2", "Chicken Breast", 200)
	backward = logFood(t, backward, "e1", "Banana", 150)

	a, b := DailyTotals(forward, testDay), DailyTotals(backward, testDay)
	assert.InDelta(t, a.Carbs, b.Carbs, 1e-9)
	assert.InDelta(t, a.Protein, b.Protein, 1e-9)
	assert.InDelta(t, a.Fat, b.Fat, 1e-9)
	assert.InDelta(t, a.Fiber, b.Fiber, 1e-9)
	assert.Equal(t, a.Calories(), b.Calories())
}

func TestAdjustedGoalAndRemaining(t *testing.T) {
	s := NewState(StarterCatalog())
	s = logFood(t, s, "e1", "Banana", 150)
	s, _, err := FinishSession(s, FinishSessionCommand{Day: testDay, SessionID: "s1", RoutineID: "A", DurationMinutes: 45, BurnRate: 6})
	require.NoError(t, err)

	assert.Equal(t, 1915, AdjustedGoal(s, testDay, 1645))
	assert.Equal(t, 1915-148, Remaining(s, testDay, 1645))

	summary := SummarizeDay(s, testDay, DefaultGoals())
	assert.Equal(t, 148, summary.CaloriesIn)
	assert.Equal(t, 270, summary.Burned)
	assert.Equal(t, 1767, summary.Remaining)
}

func TestMacroProgress(t *testing.T) {
	p := MacroProgress{Name: "Fat", Eaten: 60, Target: 45}
	assert.True(t, p.Over())
	assert.Equal(t, 100.0, p.Percent())

	half := MacroProgress{Name: "Carbs", Eaten: 80, Target: 160}
	assert.False(t, half.Over())
	assert.Equal(t, 50.0, half.Percent())

	assert.Equal(t, 0.0, MacroProgress{Eaten: 5}.Percent())
}

func TestBuildSeriesWindow(t *testing.T) {
	s := NewState(StarterCatalog())
	s = logFood(t, s, "e1", "Banana", 150)
	s, _, err := FinishSession(s, FinishSessionCommand{
		Day: "2026-03-12", SessionID: "s1", RoutineID: "A", DurationMinutes: 45, BurnRate: 6,
		Exercises: map[string][]Set{"Bicep Curls": {{Weight: 100, Reps: 8}, {Weight: 100, Reps: 8}, {Weight: 90, Reps: 10}}},
	})
	require.NoError(t, err)

	series := BuildSeries(s, testDay, 7, DefaultBMR)
	require.Equal(t, 7, series.Len())
	assert.Equal(t, DayKey("2026-03-08"), series.Points[0].Day)
	assert.Equal(t, testDay, series.Points[6].Day)

	for _, p := range series.Points[:4] {
		assert.Equal(t, 0, p.CaloriesIn)
		assert.Equal(t, 1600, p.CaloriesOut)
		assert.Equal(t, 0.0, p.Volume)
	}
	assert.Equal(t, 1870, series.Points[4].CaloriesOut)
	assert.Equal(t, 2500.0, series.Points[4].Volume)
	assert.Equal(t, 148, series.Points[6].CaloriesIn)
	assert.Equal(t, 1870, series.MaxCalories())
	assert.Equal(t, 2500.0, series.MaxVolume())

	assert.Equal(t, DefaultTrendWindow, BuildSeries(s, testDay, 0, DefaultBMR).Len())
}

func TestBuildSeriesAcrossMonthBoundary(t *testing.T) {
	series := BuildSeries(NewState(nil), "2026-03-02", 7, DefaultBMR)
	assert.Equal(t, DayKey("2026-02-24"), series.Points[0].Day)
}

func TestRecentSessions(t *testing.T) {
	s := NewState(nil)
	s.FitnessHistory["2026-03-10"] = []WorkoutSession{{ID: "a", RoutineID: "A"}}
	s.FitnessHistory["2026-03-12"] = []WorkoutSession{
		{ID: "c", RoutineID: "B", Exercises: map[string][]Set{"Bicep Curls": {{Weight: 10, Reps: 10}}}},
		{ID: "b", RoutineID: "Z"},
	}

	recent := RecentSessions(s, 10, DefaultRoutines())
	require.Len(t, recent, 3)
	assert.Equal(t, "c", recent[0].Session.ID)
	assert.Equal(t, "Workout B (Pull Focus)", recent[0].RoutineName)
	assert.Equal(t, 100.0, recent[0].Volume)
	assert.Equal(t, UnknownRoutineName, recent[1].RoutineName)
	assert.Equal(t, DayKey("2026-03-10"), recent[2].Day)

	assert.Len(t, RecentSessions(s, 2, nil), 2)
	assert.Empty(t, RecentSessions(s, 0, nil))
}

func TestRecentSessionsOrdersByIDAcrossDays(t *testing.T) {
	s := NewState(nil)
	s.FitnessHistory["2026-03-12"] = []WorkoutSession{{ID: "001", RoutineID: "A"}}
	s.FitnessHistory["2026-03-10"] = []WorkoutSession{{ID: "002", RoutineID: "B"}}
	s.FitnessHistory["2026-03-11"] = []WorkoutSession{{ID: "000", RoutineID: "A"}}

	recent := RecentSessions(s, 10, DefaultRoutines())
	require.Len(t, recent, 3)
	ids := []string{recent[0].Session.ID, recent[1].Session.ID, recent[2].Session.ID}
	assert.Equal(t, []string{"002", "001", "000"}, ids)
	assert.Equal(t, DayKey("2026-03-10"), recent[0].Day)

	capped := RecentSessions(s, 1, nil)
	require.Len(t, capped, 1)
	assert.Equal(t, "002", capped[0].Session.ID)
}

func TestDayKey(t *testing.T) {
	d, err := ParseDayKey(" 2026-03-14 ")
	require.NoError(t, err)
	assert.Equal(t, testDay, d)
	assert.Equal(t, "Sat", d.Weekday())
	assert.Equal(t, DayKey("2026-03-15"), d.AddDays(1))

	_, err = ParseDayKey("14/03/2026")
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, testDay, DayKeyOf(testNow))
}
