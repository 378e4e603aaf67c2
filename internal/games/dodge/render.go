package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

const (
	hudHeight = 4 // Title, time/score, high score, blank
	cellWidth = 2 // Terminal columns per arena cell, keeps squares square
)

// Render draws the HUD and the arena for r into dst.
func Render(dst *core.Screen, r Round) {
	dst.Clear()

	boardW := r.Arena.BoardSize*cellWidth + 2
	boardH := r.Arena.BoardSize + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", boardW, boardH+hudHeight), core.ColorGray)
		return
	}

	dst.DrawTextCentered(0, "Dodge", core.ColorBrightWhite)
	dst.DrawTextCentered(1, fmt.Sprintf("Time: %d    Score: %d", r.Elapsed, r.Score), core.ColorWhite)
	dst.DrawTextCentered(2, fmt.Sprintf("Highest Score: %d    Round: %d", r.HighScore, r.Number), core.ColorCyan)

	originX := core.Clamp((dst.Width()-boardW)/2, 0, dst.Width())
	originY := hudHeight
	dst.DrawBox(core.NewRect(originX, originY, boardW, boardH), core.ColorGray)

	drawSquare := func(p Position, ch rune, c core.Color) {
		col, row := r.Arena.Cell(p.Left), r.Arena.Cell(p.Top)
		if col < 0 || row < 0 || col >= r.Arena.BoardSize || row >= r.Arena.BoardSize {
			return
		}
		x := originX + 1 + col*cellWidth
		y := originY + 1 + row
		dst.DrawRect(core.NewRect(x, y, cellWidth, 1), ch, c)
	}

	for _, e := range r.Visible() {
		drawSquare(e.Position, '█', core.ColorWhite)
	}
	drawSquare(r.Player, '█', core.ColorBrightRed)

	dst.DrawTextCentered(originY+boardH, "arrows/wasd move  q quit", core.ColorGray)
}
