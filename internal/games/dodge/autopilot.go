package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Autopilot is a simple evasive player used by headless runs. It scores each
// reachable cell by how many enemies are heading into it and moves to the
// safest one, preferring to stay put.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot creates an autopilot with its own seeded RNG.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Decide returns the move to make, or false to stay.
func (a *Autopilot) Decide(r Round) (MoveCommand, bool) {
	best := danger(r, r.Player)
	if best == 0 {
		return MoveCommand{}, false
	}

	var choice MoveCommand
	found := false
	for _, i := range a.rng.Perm(len(Directions)) {
		cmd := Move(Directions[i])
		moved := r.MovePlayer(cmd)
		if moved.Player == r.Player {
			continue
		}
		if d := danger(r, moved.Player); d < best {
			best = d
			choice = cmd
			found = true
		}
	}
	return choice, found
}

// danger counts enemies that share p's row or column and are still travelling
// towards it.
func danger(r Round, p Position) int {
	unit := r.Arena.UnitSize
	n := 0
	for _, e := range r.Enemies {
		if e.Marked {
			continue
		}
		sameRow := core.Abs(e.Top-p.Top) < unit
		sameCol := core.Abs(e.Left-p.Left) < unit
		switch e.Dir {
		case DirLeft:
			if sameRow && e.Left <= p.Left+unit {
				n++
			}
		case DirRight:
			if sameRow && e.Left >= p.Left-unit {
				n++
			}
		case DirUp:
			if sameCol && e.Top <= p.Top+unit {
				n++
			}
		case DirDown:
			if sameCol && e.Top >= p.Top-unit {
				n++
			}
		}
	}
	return n
}
