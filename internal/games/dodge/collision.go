package dodge

// Overlaps reports whether an enemy occupies the player's cell. Cells are the
// ones Render draws: enemies outside the arena are not drawn and never collide.
func Overlaps(r Round) bool {
	row, col := r.Arena.Cell(r.Player.Top), r.Arena.Cell(r.Player.Left)
	for _, e := range r.Enemies {
		if !r.Arena.Contains(e.Position) {
			continue
		}
		if r.Arena.Cell(e.Top) == row && r.Arena.Cell(e.Left) == col {
			return true
		}
	}
	return false
}

// OverlapWatcher turns a stream of snapshots into collision events: it reports
// only the onset of an overlap, once, and forgets overlap state when a new
// round begins.
type OverlapWatcher struct {
	round       int
	overlapping bool
}

// Observe inspects a snapshot and returns true if an overlap just started.
func (w *OverlapWatcher) Observe(r Round) bool {
	if r.Number != w.round {
		w.round = r.Number
		w.overlapping = false
	}
	now := Overlaps(r)
	onset := now && !w.overlapping
	w.overlapping = now
	return onset
}
