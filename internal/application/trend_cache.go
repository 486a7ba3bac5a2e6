package application

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/domain"
)

// TrendCache keeps the trend series and recent sessions up to date with every
// state the tracker commits, so readers never rebuild them on demand.
type TrendCache struct {
	tracker     *TrackerService
	windowDays  int
	recentLimit int
	unsubscribe func()

	mu     sync.RWMutex
	report TrendReport
}

func NewTrendCache(tracker *TrackerService, windowDays, recentLimit int) *TrendCache {
	settings := tracker.Settings()
	if windowDays <= 0 {
		windowDays = settings.TrendWindowDays
	}
	if recentLimit <= 0 {
		recentLimit = settings.RecentLimit
	}

	c := &TrendCache{tracker: tracker, windowDays: windowDays, recentLimit: recentLimit}
	c.recompute(tracker.State())
	c.unsubscribe = tracker.Subscribe(c.recompute)
	return c
}

func (c *TrendCache) recompute(state domain.State) {
	settings := c.tracker.Settings()
	report := TrendReport{
		Series: domain.BuildSeries(state, c.tracker.Today(), c.windowDays, settings.BMR),
		Recent: domain.RecentSessions(state, c.recentLimit, settings.Routines),
	}

	c.mu.Lock()
	c.report = report
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"points": report.Series.Len(),
		"recent": len(report.Recent),
	}).Trace("trends recomputed")
}

func (c *TrendCache) Report() TrendReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}

// Close stops following the tracker. The last report stays readable.
func (c *TrendCache) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
