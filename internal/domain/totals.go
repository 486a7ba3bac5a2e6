package domain

// DailyTotals sums the nutrient contributions logged on day.
func DailyTotals(s State, day DayKey) Nutrients {
	var totals Nutrients
	for _, entry := range s.History[day] {
		totals = totals.Add(entry.Nutrients)
	}
	return totals
}

// CaloriesBurned sums the calories of every session finished on day.
func CaloriesBurned(s State, day DayKey) int {
	burned := 0
	for _, session := range s.FitnessHistory[day] {
		burned += session.CaloriesBurned
	}
	return burned
}

// AdjustedGoal raises the base calorie goal by what was burned training on day.
func AdjustedGoal(s State, day DayKey, baseCalorieGoal int) int {
	return baseCalorieGoal + CaloriesBurned(s, day)
}

func Remaining(s State, day DayKey, baseCalorieGoal int) int {
	return AdjustedGoal(s, day, baseCalorieGoal) - DailyTotals(s, day).Calories()
}

type DailySummary struct {
	Day          DayKey
	Entries      []LogEntry
	Sessions     []WorkoutSession
	Totals       Nutrients
	CaloriesIn   int
	Burned       int
	AdjustedGoal int
	Remaining    int
	Macros       []MacroProgress
}

func SummarizeDay(s State, day DayKey, goals Goals) DailySummary {
	totals := DailyTotals(s, day)
	burned := CaloriesBurned(s, day)
	adjusted := goals.Calories + burned

	return DailySummary{
		Day:          day,
		Entries:      s.History[day],
		Sessions:     s.FitnessHistory[day],
		Totals:       totals,
		CaloriesIn:   totals.Calories(),
		Burned:       burned,
		AdjustedGoal: adjusted,
		Remaining:    adjusted - totals.Calories(),
		Macros:       goals.Progress(totals),
	}
}
