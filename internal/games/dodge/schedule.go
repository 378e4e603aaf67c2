package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Periods are the firing intervals of the three triggers.
type Periods struct {
	Time   time.Duration
	Motion time.Duration
	Spawn  time.Duration
}

// PeriodsFromConfig extracts trigger periods from a loaded config.
func PeriodsFromConfig(cfg config.ClockConfig) Periods {
	return Periods{
		Time:   cfg.TimePeriod,
		Motion: cfg.MotionPeriod,
		Spawn:  cfg.SpawnPeriod,
	}
}

func (p Periods) of(t Trigger) time.Duration {
	switch t {
	case TriggerTime:
		return p.Time
	case TriggerMotion:
		return p.Motion
	default:
		return p.Spawn
	}
}

// Schedule is a virtual clock for the three triggers. It yields firings in
// simulated time without sleeping, which makes headless runs deterministic.
type Schedule struct {
	periods Periods
	now     time.Duration
	due     [3]time.Duration
}

// NewSchedule starts all three triggers at simulated time zero.
func NewSchedule(p Periods) *Schedule {
	s := &Schedule{periods: p}
	s.Restart()
	return s
}

// Now returns the simulated time of the latest firing.
func (s *Schedule) Now() time.Duration {
	return s.now
}

// Next advances to the earliest pending firing and returns its trigger.
// Coinciding firings are returned in Trigger order.
func (s *Schedule) Next() Trigger {
	next := TriggerTime
	for _, t := range []Trigger{TriggerMotion, TriggerSpawn} {
		if s.due[t] < s.due[next] {
			next = t
		}
	}
	s.now = s.due[next]
	s.due[next] += s.periods.of(next)
	return next
}

// Restart stops and restarts all triggers at the current time: each fires next
// one full period from now and any pending firing is discarded.
func (s *Schedule) Restart() {
	for _, t := range []Trigger{TriggerTime, TriggerMotion, TriggerSpawn} {
		s.due[t] = s.now + s.periods.of(t)
	}
}
