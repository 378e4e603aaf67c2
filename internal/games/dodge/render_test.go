package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestRenderBoard(t *testing.T) {
	r := newTestRound()
	r.TargetEnemies = 1
	r = r.SpawnEnemy(DirUp)
	for i := 0; i < 3; i++ {
		r = r.AdvanceTime()
	}

	s := core.NewScreen(80, 24)
	Render(s, r)
	text := s.String()

	for _, want := range []string{"Dodge", "Time: 3", "Score: 30", "Highest Score: 0"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}

	// Board is 22 columns wide, centered: origin x = 29, y = 4
	if s.Get(29, 4) != '┌' {
		t.Errorf("board corner = %q, expected '┌'", s.Get(29, 4))
	}

	// Player at cell (5, 5)
	player := s.GetCell(40, 10)
	if player.Rune != '█' || player.Color != core.ColorBrightRed {
		t.Errorf("player cell = %+v", player)
	}
	if s.GetCell(41, 10) != player {
		t.Error("player should span two columns")
	}

	// Enemy entered from the top at cell (5, 0)
	enemy := s.GetCell(40, 5)
	if enemy.Rune != '█' || enemy.Color != core.ColorWhite {
		t.Errorf("enemy cell = %+v", enemy)
	}
}

func TestRenderSkipsEnemiesOutsideArena(t *testing.T) {
	r := newTestRound()
	r.Enemies = []Enemy{{Position: Position{Top: 200, Left: 100}, ID: 1, Dir: DirUp, Marked: true}}

	s := core.NewScreen(80, 24)
	Render(s, r)
	// Bottom border row of the board
	if s.Get(40, 15) != '─' {
		t.Errorf("border overwritten by out-of-arena enemy: %q", s.Get(40, 15))
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := core.NewScreen(20, 6)
	Render(s, newTestRound())
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected too-small notice:\n%s", s.String())
	}
}
