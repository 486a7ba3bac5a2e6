package domain

import (
	"sort"
	"strings"
)

// NoPriorRecord is shown for an exercise that was never performed.
const NoPriorRecord = "New!"

type Performance struct {
	Day       DayKey
	SessionID string
	Sets      []Set
}

// String renders sets as "100x8, 100x8, 90x10".
func (p Performance) String() string {
	parts := make([]string, len(p.Sets))
	for i, set := range p.Sets {
		parts[i] = set.String()
	}
	return strings.Join(parts, ", ")
}

// LastPerformance scans days newest first, sessions in stored order, and returns
// the sets of the first session that lists exercise, even with no sets.
func LastPerformance(s State, exercise string) (Performance, bool) {
	for _, day := range sortedDaysDesc(s.FitnessHistory) {
		for _, session := range s.FitnessHistory[day] {
			if sets, ok := session.Exercises[exercise]; ok {
				return Performance{Day: day, SessionID: session.ID, Sets: append([]Set(nil), sets...)}, true
			}
		}
	}
	return Performance{}, false
}

func sortedDaysDesc[T any](byDay map[DayKey][]T) []DayKey {
	days := make([]DayKey, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })
	return days
}
