package dodge

import "testing"

func roundWithEnemyAt(p Position) Round {
	r := newTestRound()
	r.Enemies = []Enemy{{Position: p, ID: 1, Dir: DirLeft}}
	return r
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		enemy Position
		want  bool
	}{
		{"same cell", Position{100, 100}, true},
		{"inside the same cell", Position{105, 119}, true},
		{"half a cell left, drawn in the cell to the left", Position{100, 90}, false},
		{"adjacent cell", Position{100, 80}, false},
		{"diagonal neighbour", Position{120, 120}, false},
		{"far away", Position{0, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(roundWithEnemyAt(tc.enemy)); got != tc.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.want)
			}
		})
	}

	if Overlaps(newTestRound()) {
		t.Error("no enemies should never overlap")
	}
}

func TestOverlapsMatchesRenderedCells(t *testing.T) {
	// Player drawn in cell 6, enemy drawn side by side in cell 5
	r := newTestRound()
	r.Player = Position{Top: 100, Left: 120}
	r.Enemies = []Enemy{{Position: Position{Top: 100, Left: 110}, ID: 1, Dir: DirRight}}
	if Overlaps(r) {
		t.Error("enemy in the adjacent cell should not collide")
	}

	r.Enemies[0].Left = 125
	if !Overlaps(r) {
		t.Error("enemy drawn in the player's cell should collide")
	}
}

func TestOverlapsIgnoresEnemiesOutsideArena(t *testing.T) {
	r := newTestRound()
	r.Player = Position{Top: 100, Left: 0}
	r.Enemies = []Enemy{{Position: Position{Top: 100, Left: -10}, ID: 1, Dir: DirRight, Marked: true}}

	if len(r.Visible()) != 0 {
		t.Fatal("enemy should be outside the arena")
	}
	if Overlaps(r) {
		t.Error("enemy that is not drawn should not collide")
	}
}

func TestOverlapWatcherReportsOnsetOnce(t *testing.T) {
	var w OverlapWatcher

	if w.Observe(roundWithEnemyAt(Position{100, 40})) {
		t.Error("no overlap yet")
	}
	if !w.Observe(roundWithEnemyAt(Position{100, 100})) {
		t.Error("expected collision at overlap onset")
	}
	if w.Observe(roundWithEnemyAt(Position{100, 110})) {
		t.Error("continuing overlap must not report again")
	}
	if w.Observe(roundWithEnemyAt(Position{100, 140})) {
		t.Error("separated, no collision")
	}
	if !w.Observe(roundWithEnemyAt(Position{100, 119})) {
		t.Error("a new overlap should report again")
	}
}

func TestOverlapWatcherNewRound(t *testing.T) {
	var w OverlapWatcher
	r := roundWithEnemyAt(Position{100, 100})
	if !w.Observe(r) {
		t.Fatal("expected onset")
	}

	// Same overlap seen in a later round is a new onset
	r.Number = 2
	if !w.Observe(r) {
		t.Error("overlap in a new round should report")
	}
}
