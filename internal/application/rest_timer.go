package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// RestTimer tracks one countdown per exercise. A single tick decrements every
// running countdown by one second; finished countdowns stay at zero.
type RestTimer struct {
	duration time.Duration

	mu        sync.Mutex
	remaining map[string]int
}

type RestCountdown struct {
	Exercise         string
	RemainingSeconds int
}

func NewRestTimer(duration time.Duration) *RestTimer {
	if duration <= 0 {
		duration = DefaultSettings().RestDuration
	}
	return &RestTimer{duration: duration, remaining: map[string]int{}}
}

// Toggle starts the countdown for exercise, or stops it when it is running.
// It reports whether the countdown is running afterwards.
func (t *RestTimer) Toggle(exercise string) bool {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining[exercise] > 0 {
		t.remaining[exercise] = 0
		return false
	}
	t.remaining[exercise] = int(t.duration / time.Second)
	return true
}

// Tick advances every running countdown by one second and reports whether any
// countdown is still running.
func (t *RestTimer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	running := false
	for exercise, seconds := range t.remaining {
		if seconds <= 0 {
			continue
		}
		t.remaining[exercise] = seconds - 1
		if seconds-1 > 0 {
			running = true
		}
	}
	return running
}

func (t *RestTimer) Remaining(exercise string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining[strings.TrimSpace(exercise)]
}

func (t *RestTimer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, seconds := range t.remaining {
		if seconds > 0 {
			return true
		}
	}
	return false
}

// Snapshot returns every known countdown ordered by exercise name.
func (t *RestTimer) Snapshot() []RestCountdown {
	t.mu.Lock()
	countdowns := make([]RestCountdown, 0, len(t.remaining))
	for exercise, seconds := range t.remaining {
		countdowns = append(countdowns, RestCountdown{Exercise: exercise, RemainingSeconds: seconds})
	}
	t.mu.Unlock()

	sort.Slice(countdowns, func(i, j int) bool {
		return countdowns[i].Exercise < countdowns[j].Exercise
	})
	return countdowns
}

// Run ticks every period until ctx is done or no countdown is left running.
// onTick, when set, receives the countdowns after every tick.
func (t *RestTimer) Run(ctx context.Context, period time.Duration, onTick func([]RestCountdown)) error {
	if period <= 0 {
		period = time.Second
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			running := t.Tick()
			if onTick != nil {
				onTick(t.Snapshot())
			}
			if !running {
				return nil
			}
		}
	}
}
