package dodge

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Ticker is the subset of time.Ticker the engine needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealTickers is the TickerFactory backed by time.NewTicker.
func RealTickers(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// RoundRecorder receives the summary of every round that ends.
// It lets the engine report results without depending on the storage package.
type RoundRecorder interface {
	SaveRound(ctx context.Context, result RoundResult) error
}

// EngineOptions configures an Engine. Zero values select defaults.
type EngineOptions struct {
	Logger   *log.Logger
	Tickers  TickerFactory
	Recorder RoundRecorder
	Session  string // Copied into every RoundResult
}

type command interface{ isCommand() }

type moveCmd struct{ cmd MoveCommand }

type collideCmd struct{ round int }

type snapshotCmd struct{ reply chan Round }

func (moveCmd) isCommand()     {}
func (collideCmd) isCommand()  {}
func (snapshotCmd) isCommand() {}

// Engine drives a Sim in real time. Three tickers and the command inbox are
// consumed by a single goroutine (Run), so every transition is serialized.
// Snapshots are published on Updates with latest-wins semantics.
type Engine struct {
	sim      *Sim
	periods  Periods
	logger   *log.Logger
	tickers  TickerFactory
	recorder RoundRecorder
	session  string

	inbox   chan command
	updates chan Round
	results chan RoundResult
	done    chan struct{}

	timeTicker   Ticker
	motionTicker Ticker
	spawnTicker  Ticker
}

// NewEngine creates an engine for sim. Call Run to start it.
func NewEngine(sim *Sim, periods Periods, opts EngineOptions) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tickers == nil {
		opts.Tickers = RealTickers
	}
	return &Engine{
		sim:      sim,
		periods:  periods,
		logger:   opts.Logger,
		tickers:  opts.Tickers,
		recorder: opts.Recorder,
		session:  opts.Session,
		inbox:    make(chan command, 64),
		updates:  make(chan Round, 1),
		results:  make(chan RoundResult, 16),
		done:     make(chan struct{}),
	}
}

// Updates returns the channel snapshots are published on. Only the most recent
// unread snapshot is kept.
func (e *Engine) Updates() <-chan Round {
	return e.updates
}

// Done returns a channel that is closed when Run returns.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Move queues a player move. It never blocks; moves are dropped if the inbox
// is full.
func (e *Engine) Move(cmd MoveCommand) {
	select {
	case e.inbox <- moveCmd{cmd: cmd}:
	default:
		e.logger.Debug("move dropped, inbox full", "dir", cmd.Dir)
	}
}

// Collide reports a collision observed in round number round. Reports for a
// round that has already ended are discarded by the engine.
func (e *Engine) Collide(round int) {
	select {
	case e.inbox <- collideCmd{round: round}:
	case <-e.done:
	}
}

// Snapshot returns the current round as seen by the engine goroutine. Once
// Run has returned it returns the final round.
func (e *Engine) Snapshot(ctx context.Context) (Round, error) {
	select {
	case <-e.done:
		return e.sim.Snapshot(), nil
	default:
	}

	reply := make(chan Round, 1)
	select {
	case e.inbox <- snapshotCmd{reply: reply}:
	case <-e.done:
		return e.sim.Snapshot(), nil
	case <-ctx.Done():
		return Round{}, ctx.Err()
	}
	select {
	case r := <-reply:
		return r, nil
	case <-e.done:
		// Queued behind the shutdown and never answered
		return e.sim.Snapshot(), nil
	case <-ctx.Done():
		return Round{}, ctx.Err()
	}
}

// Run starts the clock and processes triggers and commands until ctx is
// cancelled. It must be called exactly once.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)

	recorderDone := make(chan struct{})
	go e.recordResults(ctx, recorderDone)
	defer func() {
		close(e.results)
		<-recorderDone
	}()

	e.startClock()
	defer e.stopClock()

	e.publish(e.sim.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.timeTicker.C():
			e.publish(e.sim.Fire(TriggerTime))
		case <-e.motionTicker.C():
			e.publish(e.sim.Fire(TriggerMotion))
		case <-e.spawnTicker.C():
			before := len(e.sim.round.Enemies)
			r := e.sim.Fire(TriggerSpawn)
			if len(r.Enemies) > before {
				last := r.Enemies[len(r.Enemies)-1]
				e.logger.Debug("enemy spawned", "round", r.Number, "id", last.ID, "dir", last.Dir)
			}
			e.publish(r)
		case cmd := <-e.inbox:
			e.handle(cmd)
		}
	}
}

func (e *Engine) handle(cmd command) {
	switch c := cmd.(type) {
	case moveCmd:
		e.publish(e.sim.Move(c.cmd))
	case collideCmd:
		if c.round != e.sim.round.Number {
			e.logger.Debug("stale collision discarded", "reported", c.round, "current", e.sim.round.Number)
			return
		}
		e.reset()
	case snapshotCmd:
		c.reply <- e.sim.Snapshot()
	}
}

// reset ends the round. The clock is stopped before the state changes and
// restarted after, so no firing scheduled for the old round is ever applied
// to the new one.
func (e *Engine) reset() {
	e.stopClock()
	result, next := e.sim.Collide()
	result.Session = e.session
	e.startClock()

	e.logger.Info("round over",
		"round", result.Number,
		"score", result.Score,
		"elapsed", result.Elapsed,
		"high_score", result.HighScore,
	)

	select {
	case e.results <- result:
	default:
		e.logger.Warn("round result dropped", "round", result.Number)
	}
	e.publish(next)
}

func (e *Engine) startClock() {
	e.timeTicker = e.tickers(e.periods.Time)
	e.motionTicker = e.tickers(e.periods.Motion)
	e.spawnTicker = e.tickers(e.periods.Spawn)
	e.logger.Debug("clock started", "time", e.periods.Time, "motion", e.periods.Motion, "spawn", e.periods.Spawn)
}

func (e *Engine) stopClock() {
	for _, t := range []Ticker{e.timeTicker, e.motionTicker, e.spawnTicker} {
		if t != nil {
			t.Stop()
		}
	}
}

// publish replaces any unread snapshot with r.
func (e *Engine) publish(r Round) {
	select {
	case e.updates <- r:
		return
	default:
	}
	select {
	case <-e.updates:
	default:
	}
	select {
	case e.updates <- r:
	default:
	}
}

func (e *Engine) recordResults(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	for result := range e.results {
		if e.recorder == nil {
			continue
		}
		if err := e.recorder.SaveRound(context.WithoutCancel(ctx), result); err != nil {
			e.logger.Warn("could not record round", "round", result.Number, "error", err)
		}
	}
}
