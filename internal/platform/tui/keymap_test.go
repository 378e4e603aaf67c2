package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want dodge.Direction
		ok   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, dodge.DirLeft, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, dodge.DirUp, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, dodge.DirRight, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, dodge.DirDown, true},
		{"a", runeKey('a'), dodge.DirLeft, true},
		{"w", runeKey('w'), dodge.DirUp, true},
		{"d", runeKey('d'), dodge.DirRight, true},
		{"s", runeKey('s'), dodge.DirDown, true},
		{"h", runeKey('h'), dodge.DirLeft, true},
		{"k", runeKey('k'), dodge.DirUp, true},
		{"l", runeKey('l'), dodge.DirRight, true},
		{"j", runeKey('j'), dodge.DirDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, dodge.DirNone, false},
		{"x", runeKey('x'), dodge.DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Direction(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	if n := len(km.ShortHelp()); n != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", n)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", total)
	}
}
