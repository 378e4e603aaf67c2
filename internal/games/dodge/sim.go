package dodge

import (
	"math/rand"
	"time"
)

// Trigger identifies one of the three periodic clock triggers.
type Trigger uint8

// Triggers that coincide fire in this order.
const (
	TriggerTime Trigger = iota
	TriggerMotion
	TriggerSpawn
)

func (t Trigger) String() string {
	switch t {
	case TriggerTime:
		return "time"
	case TriggerMotion:
		return "motion"
	case TriggerSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Sim is the single owner of the authoritative round. Its methods are the only
// way to change the round and each returns the resulting snapshot.
// A Sim is not safe for concurrent use; Engine serializes access to it.
type Sim struct {
	rng   *rand.Rand
	round Round
}

// NewSim creates a simulation with a fresh first round. A zero seed selects a
// time-based seed.
func NewSim(arena Arena, p Params, seed int64) *Sim {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sim{
		rng:   rand.New(rand.NewSource(seed)),
		round: NewRound(arena, p, 0, 1),
	}
}

// Fire applies one firing of the given trigger.
func (s *Sim) Fire(t Trigger) Round {
	switch t {
	case TriggerTime:
		s.round = s.round.AdvanceTime()
	case TriggerMotion:
		s.round = s.round.MoveEnemies()
	case TriggerSpawn:
		if s.round.CanSpawn() {
			s.round = s.round.SpawnEnemy(Directions[s.rng.Intn(len(Directions))])
		}
	}
	return s.Snapshot()
}

// Move applies a player move command.
func (s *Sim) Move(cmd MoveCommand) Round {
	s.round = s.round.MovePlayer(cmd)
	return s.Snapshot()
}

// Collide ends the current round and starts the next one. It returns the
// summary of the round that ended and the fresh round.
func (s *Sim) Collide() (RoundResult, Round) {
	result := s.round.Result()
	s.round = s.round.Reset()
	return result, s.Snapshot()
}

// Snapshot returns a copy of the current round that shares no memory with the Sim.
func (s *Sim) Snapshot() Round {
	return s.round.clone()
}
