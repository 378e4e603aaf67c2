// Package dodge implements the dodge simulation: a player square avoiding a
// growing swarm of enemy squares that cross a fixed arena in straight lines.
//
// Round holds the complete state of one round and every transition returns a
// new Round. Sim owns the current Round and the RNG. Engine and Schedule are
// the real-time and virtual clocks that drive a Sim.
package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Params are the tunables a round is (re)initialized with.
type Params struct {
	InitialSpeed  float64 // Enemy pixels per motion tick
	SpeedGrowth   float64 // Compounding growth per speed step (0.1 = 10%)
	SpeedEvery    int     // Seconds between speed steps; 0 disables
	InitialTarget int     // Target enemy count at round start
	TargetEvery   int     // Seconds between target increments; 0 disables
	ScorePerSec   int
	Escalate      bool // Whether speed and target grow at all
}

// DefaultParams returns the standard difficulty curve.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultDodgeConfig())
}

// ParamsFromConfig extracts round parameters from a loaded config.
func ParamsFromConfig(cfg config.DodgeConfig) Params {
	return Params{
		InitialSpeed:  cfg.Difficulty.InitialEnemySpeed,
		SpeedGrowth:   cfg.Difficulty.SpeedGrowth,
		SpeedEvery:    cfg.Difficulty.SpeedEvery,
		InitialTarget: cfg.Difficulty.InitialTarget,
		TargetEvery:   cfg.Difficulty.TargetEvery,
		ScorePerSec:   cfg.Scoring.ScorePerSec,
		Escalate:      cfg.Difficulty.Enabled,
	}
}

// Round is an immutable snapshot of one round. Transition methods never modify
// the receiver; callers may keep old values around safely.
type Round struct {
	Number        int // 1 for the first round, incremented on every reset
	Player        Position
	Enemies       []Enemy // Spawn order
	Arena         Arena
	EnemySpeed    float64
	TargetEnemies int
	Elapsed       int // Whole seconds
	Score         int
	ScorePerSec   int
	HighScore     int

	params Params
	nextID uint64
}

// RoundResult summarizes a round that ended in a collision.
type RoundResult struct {
	Session       string
	Number        int
	Score         int
	Elapsed       int
	EnemySpeed    float64
	TargetEnemies int
	HighScore     int // High score after this round was counted
}

// NewRound creates the initial state of a round.
func NewRound(arena Arena, p Params, highScore, number int) Round {
	mid := arena.Center()
	return Round{
		Number:        number,
		Player:        Position{Top: mid, Left: mid},
		Enemies:       []Enemy{},
		Arena:         arena,
		EnemySpeed:    p.InitialSpeed,
		TargetEnemies: p.InitialTarget,
		ScorePerSec:   p.ScorePerSec,
		HighScore:     highScore,
		params:        p,
		nextID:        1,
	}
}

func (r Round) clone() Round {
	enemies := make([]Enemy, len(r.Enemies))
	copy(enemies, r.Enemies)
	r.Enemies = enemies
	return r
}

// Step returns the whole-pixel displacement applied to enemies this tick.
func (r Round) Step() int {
	return int(math.Round(r.EnemySpeed))
}

// AdvanceTime applies one elapsed-second tick: score accrues, then the
// post-increment second decides whether speed and target grow.
func (r Round) AdvanceTime() Round {
	next := r.clone()
	next.Elapsed++
	next.Score += next.ScorePerSec

	if !next.params.Escalate {
		return next
	}
	if every := next.params.SpeedEvery; every > 0 && next.Elapsed%every == 0 {
		next.EnemySpeed *= 1 + next.params.SpeedGrowth
	}
	if every := next.params.TargetEvery; every > 0 && next.Elapsed%every == 0 {
		next.TargetEnemies++
	}
	return next
}

// MoveEnemies applies one motion tick. Enemies marked on the previous tick are
// dropped first; an enemy found outside the arena is marked but still moves once.
func (r Round) MoveEnemies() Round {
	next := r
	step := r.Step()
	next.Enemies = make([]Enemy, 0, len(r.Enemies))
	for _, e := range r.Enemies {
		if e.Marked {
			continue
		}
		if !r.Arena.Contains(e.Position) {
			e.Marked = true
		}
		e.Position = e.Dir.travel(e.Position, step)
		next.Enemies = append(next.Enemies, e)
	}
	return next
}

// CanSpawn reports whether the swarm is below its target size.
func (r Round) CanSpawn() bool {
	return len(r.Enemies) < r.TargetEnemies
}

// SpawnEnemy adds one enemy entering from edge d, aligned with the player's
// current position. It is a no-op when the swarm is full or d is invalid.
func (r Round) SpawnEnemy(d Direction) Round {
	if !r.CanSpawn() || !d.Valid() {
		return r
	}
	next := r.clone()
	next.Enemies = append(next.Enemies, Enemy{
		Position: d.origin(r.Player, r.Arena),
		ID:       r.nextID,
		Dir:      d,
	})
	next.nextID++
	return next
}

// MovePlayer applies a move command. Moves that would leave the arena, invalid
// headings and deltas that do not match the heading leave the round unchanged.
func (r Round) MovePlayer(cmd MoveCommand) Round {
	if !cmd.wellFormed() {
		return r
	}
	p := r.Player
	switch cmd.Dir {
	case DirLeft:
		if p.Left == 0 {
			return r
		}
	case DirUp:
		if p.Top == 0 {
			return r
		}
	case DirRight:
		if p.Left == r.Arena.Max() {
			return r
		}
	case DirDown:
		if p.Top == r.Arena.Max() {
			return r
		}
	}

	next := r.clone()
	next.Player = Position{
		Top:  p.Top + cmd.Top*r.Arena.UnitSize,
		Left: p.Left + cmd.Left*r.Arena.UnitSize,
	}
	return next
}

// Reset ends the round: the high score absorbs the current score and a fresh
// round begins with the same arena and parameters.
func (r Round) Reset() Round {
	return NewRound(r.Arena, r.params, max(r.HighScore, r.Score), r.Number+1)
}

// Result summarizes the round as it stands.
func (r Round) Result() RoundResult {
	return RoundResult{
		Number:        r.Number,
		Score:         r.Score,
		Elapsed:       r.Elapsed,
		EnemySpeed:    r.EnemySpeed,
		TargetEnemies: r.TargetEnemies,
		HighScore:     max(r.HighScore, r.Score),
	}
}

// Visible returns the enemies currently inside the arena.
func (r Round) Visible() []Enemy {
	visible := make([]Enemy, 0, len(r.Enemies))
	for _, e := range r.Enemies {
		if r.Arena.Contains(e.Position) {
			visible = append(visible, e)
		}
	}
	return visible
}
