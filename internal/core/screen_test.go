package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)
	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWithColor(3, 4, '█', ColorRed)

	if c := s.GetCell(3, 4); c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red block", c)
	}

	// Out of bounds writes are ignored and reads return a blank cell
	s.SetWithColor(-1, 0, 'X', ColorRed)
	s.SetWithColor(0, 100, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextWithColor(1, 1, "Score: 10", ColorYellow)

	if row := s.Row(1); !strings.HasPrefix(row, " Score: 10") {
		t.Errorf("Row(1) = %q", row)
	}
	if s.GetCell(1, 1).Color != ColorYellow {
		t.Error("text should carry its color")
	}

	// Clipped at the right edge
	s.DrawText(10, 0, "Hello")
	if s.Get(10, 0) != 'H' || s.Get(11, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Dodge", ColorWhite)
	x := (20 - 5) / 2
	if got := s.Row(1)[x : x+5]; got != "Dodge" {
		t.Errorf("centered text = %q, expected %q", got, "Dodge")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 4, 2), '█', ColorRed)

	for y := 2; y < 4; y++ {
		for x := 2; x < 6; x++ {
			if s.Get(x, y) != '█' {
				t.Errorf("DrawRect: expected block at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(6, 2) != ' ' || s.Get(2, 4) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")
	if got := s.String(); got != "ABC\nDEF" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 {
		t.Fatalf("after Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "    " {
		t.Errorf("Resize should clear content, got %q", got)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("out of range Row = %q", got)
	}
}
