package dodge

// Arena describes the square playing field. All coordinates are pixels;
// entities occupy exactly one unit x unit cell.
type Arena struct {
	BoardSize int // Grid units per side
	UnitSize  int // Pixels per unit
	Dimension int // BoardSize * UnitSize
}

// NewArena derives the arena geometry from a board size and unit size.
func NewArena(boardSize, unitSize int) Arena {
	return Arena{
		BoardSize: boardSize,
		UnitSize:  unitSize,
		Dimension: boardSize * unitSize,
	}
}

// Max returns the largest legal top/left coordinate.
func (a Arena) Max() int {
	return a.Dimension - a.UnitSize
}

// Center returns the grid-aligned center coordinate used for the player spawn.
func (a Arena) Center() int {
	return (a.BoardSize / 2) * a.UnitSize
}

// Contains reports whether p lies within [0, Max()] on both axes.
func (a Arena) Contains(p Position) bool {
	return p.Top >= 0 && p.Left >= 0 && p.Top <= a.Max() && p.Left <= a.Max()
}

// Cell converts a pixel coordinate to a grid index, flooring towards negative infinity.
func (a Arena) Cell(px int) int {
	if px < 0 {
		return -((-px + a.UnitSize - 1) / a.UnitSize)
	}
	return px / a.UnitSize
}
