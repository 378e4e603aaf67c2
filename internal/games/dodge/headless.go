package dodge

import (
	"time"
)

// HeadlessOptions bounds a headless run. A zero bound is ignored, but at least
// one must be set.
type HeadlessOptions struct {
	Duration time.Duration // Simulated time limit
	Rounds   int           // Stop after this many collisions
	Pilot    *Autopilot    // Nil means the player never moves
	Session  string
}

// HeadlessReport summarizes a headless run.
type HeadlessReport struct {
	Simulated time.Duration
	Results   []RoundResult
	Final     Round
}

// HighScore returns the best score reached, including the unfinished round.
func (h HeadlessReport) HighScore() int {
	return max(h.Final.HighScore, h.Final.Score)
}

// RunHeadless drives sim with a virtual Schedule. Collisions are detected the
// same way the terminal adapter does it, after every transition. The pilot
// acts once per spawn tick.
func RunHeadless(sim *Sim, periods Periods, opts HeadlessOptions) HeadlessReport {
	sched := NewSchedule(periods)
	var watcher OverlapWatcher
	var report HeadlessReport

	r := sim.Snapshot()
	collide := func() {
		result, next := sim.Collide()
		result.Session = opts.Session
		report.Results = append(report.Results, result)
		sched.Restart()
		r = next
	}

	for {
		if opts.Duration > 0 && sched.Now() >= opts.Duration {
			break
		}
		if opts.Rounds > 0 && len(report.Results) >= opts.Rounds {
			break
		}
		if opts.Duration <= 0 && opts.Rounds <= 0 {
			break
		}

		trigger := sched.Next()
		r = sim.Fire(trigger)
		if watcher.Observe(r) {
			collide()
			continue
		}

		if trigger != TriggerSpawn || opts.Pilot == nil {
			continue
		}
		if cmd, ok := opts.Pilot.Decide(r); ok {
			r = sim.Move(cmd)
			if watcher.Observe(r) {
				collide()
			}
		}
	}

	report.Simulated = sched.Now()
	report.Final = r
	return report
}
