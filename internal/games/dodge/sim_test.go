package dodge

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func runScripted(seed int64, seconds int) Round {
	sim := NewSim(NewArena(10, 20), DefaultParams(), seed)
	sched := NewSchedule(testPeriods())
	script := rand.New(rand.NewSource(7))

	var r Round
	for sched.Now() < time.Duration(seconds)*time.Second {
		r = sim.Fire(sched.Next())
		if script.Intn(10) == 0 {
			r = sim.Move(Move(Directions[script.Intn(4)]))
		}
	}
	return r
}

func TestDeterminism(t *testing.T) {
	a := runScripted(12345, 60)
	b := runScripted(12345, 60)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different rounds:\n%+v\n%+v", a, b)
	}
	if a.Elapsed != 60 {
		t.Errorf("Elapsed = %d, expected 60", a.Elapsed)
	}
}

func TestSimInvariants(t *testing.T) {
	sim := NewSim(NewArena(10, 20), DefaultParams(), 99)
	sched := NewSchedule(testPeriods())
	moves := rand.New(rand.NewSource(3))

	prev := sim.Snapshot()
	for sched.Now() < 3*time.Minute {
		trigger := sched.Next()
		r := sim.Fire(trigger)
		if moves.Intn(4) == 0 {
			r = sim.Move(Move(Directions[moves.Intn(4)]))
		}

		if !r.Arena.Contains(r.Player) {
			t.Fatalf("player out of bounds: %+v", r.Player)
		}
		for _, e := range r.Visible() {
			if !r.Arena.Contains(e.Position) {
				t.Fatalf("visible enemy out of bounds: %+v", e)
			}
		}
		if len(r.Enemies) > r.TargetEnemies {
			t.Fatalf("enemies %d exceed target %d", len(r.Enemies), r.TargetEnemies)
		}
		if r.Score < prev.Score {
			t.Fatalf("score decreased from %d to %d", prev.Score, r.Score)
		}
		if r.Score != r.Elapsed*r.ScorePerSec {
			t.Fatalf("score %d != elapsed %d * rate %d", r.Score, r.Elapsed, r.ScorePerSec)
		}
		if trigger == TriggerSpawn && len(r.Enemies) > len(prev.Enemies)+1 {
			t.Fatalf("more than one enemy added by a spawn tick")
		}
		prev = r
	}

	if prev.TargetEnemies != 18 {
		t.Errorf("TargetEnemies = %d after 180s, expected 18", prev.TargetEnemies)
	}
}

func TestSimSnapshotIsolation(t *testing.T) {
	sim := NewSim(NewArena(10, 20), DefaultParams(), 1)
	for i := 0; i < 10; i++ {
		sim.Fire(TriggerTime)
	}
	r := sim.Fire(TriggerSpawn)
	if len(r.Enemies) != 1 {
		t.Fatalf("Enemies = %d, expected 1", len(r.Enemies))
	}

	r.Enemies[0].Top = -500
	r.Player.Left = -500

	again := sim.Snapshot()
	if again.Enemies[0].Top == -500 || again.Player.Left == -500 {
		t.Error("mutating a snapshot changed the simulation")
	}
}

func TestSimSpawnOnlyBelowTarget(t *testing.T) {
	sim := NewSim(NewArena(10, 20), DefaultParams(), 1)
	for i := 0; i < 50; i++ {
		sim.Fire(TriggerSpawn)
	}
	if n := len(sim.Snapshot().Enemies); n != 0 {
		t.Errorf("Enemies = %d with target 0, expected 0", n)
	}
}

func TestSimCollide(t *testing.T) {
	sim := NewSim(NewArena(10, 20), DefaultParams(), 1)
	for i := 0; i < 7; i++ {
		sim.Fire(TriggerTime)
	}

	result, next := sim.Collide()
	if result.Number != 1 || result.Score != 70 || result.Elapsed != 7 || result.HighScore != 70 {
		t.Errorf("result = %+v", result)
	}
	if next.Number != 2 || next.Score != 0 || next.HighScore != 70 {
		t.Errorf("next round = %+v", next)
	}

	sim.Fire(TriggerTime)
	result, next = sim.Collide()
	if result.HighScore != 70 || next.HighScore != 70 {
		t.Errorf("high score dropped: result %d, next %d", result.HighScore, next.HighScore)
	}
}

func testPeriods() Periods {
	return PeriodsFromConfig(config.DefaultDodgeConfig().Clock)
}
