package domain

import "sort"

const DefaultTrendWindow = 7

type TrendPoint struct {
	Day         DayKey
	CaloriesIn  int
	CaloriesOut int
	Volume      float64
}

type Series struct {
	Points []TrendPoint
}

// BuildSeries returns exactly windowDays points ending at today, oldest first.
// Days without records contribute zero intake and volume and BMR as output.
func BuildSeries(s State, today DayKey, windowDays int, bmr int) Series {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindow
	}

	points := make([]TrendPoint, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := today.AddDays(-offset)

		volume := 0.0
		for _, session := range s.FitnessHistory[day] {
			volume += session.Volume()
		}

		points = append(points, TrendPoint{
			Day:         day,
			CaloriesIn:  DailyTotals(s, day).Calories(),
			CaloriesOut: bmr + CaloriesBurned(s, day),
			Volume:      volume,
		})
	}

	return Series{Points: points}
}

func (s Series) Len() int { return len(s.Points) }

// MaxCalories is the largest intake or output value in the series.
func (s Series) MaxCalories() int {
	peak := 0
	for _, p := range s.Points {
		peak = max(peak, p.CaloriesIn, p.CaloriesOut)
	}
	return peak
}

func (s Series) MaxVolume() float64 {
	peak := 0.0
	for _, p := range s.Points {
		peak = max(peak, p.Volume)
	}
	return peak
}

type SessionSummary struct {
	Day         DayKey
	Session     WorkoutSession
	RoutineName string
	Volume      float64
}

// RecentSessions lists sessions across all days, newest id first, capped at
// limit. Ids are time ordered, so a back-dated session still sorts by when it
// was recorded.
func RecentSessions(s State, limit int, routines []Routine) []SessionSummary {
	if limit <= 0 {
		return nil
	}

	recent := make([]SessionSummary, 0, limit)
	for day, sessions := range s.FitnessHistory {
		for _, session := range sessions {
			recent = append(recent, SessionSummary{
				Day:         day,
				Session:     session,
				RoutineName: RoutineName(routines, session.RoutineID),
				Volume:      session.Volume(),
			})
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Session.ID != recent[j].Session.ID {
			return recent[i].Session.ID > recent[j].Session.ID
		}
		return recent[i].Day > recent[j].Day
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
