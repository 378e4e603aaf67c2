package dodge

// Position is a pixel coordinate of an entity's top-left corner.
type Position struct {
	Top  int
	Left int
}

// Direction is one of the four arena edges. For enemies it names the edge of
// origin; for move commands it names the heading.
type Direction uint8

// The zero Direction is invalid and every rule treats it as a no-op.
const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Directions lists the valid directions in spawn-draw order.
var Directions = [4]Direction{DirLeft, DirUp, DirRight, DirDown}

// String returns the direction label.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "LEFT"
	case DirUp:
		return "UP"
	case DirRight:
		return "RIGHT"
	case DirDown:
		return "DOWN"
	default:
		return "NONE"
	}
}

// Valid reports whether d is one of the four edges.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// Delta returns the unit step of a player moving towards d.
func (d Direction) Delta() (top, left int) {
	switch d {
	case DirLeft:
		return 0, -1
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// origin returns where an enemy entering from edge d appears, aligned with the
// player on the other axis.
func (d Direction) origin(player Position, a Arena) Position {
	switch d {
	case DirLeft:
		return Position{Top: player.Top, Left: 0}
	case DirUp:
		return Position{Top: 0, Left: player.Left}
	case DirRight:
		return Position{Top: player.Top, Left: a.Max()}
	case DirDown:
		return Position{Top: a.Max(), Left: player.Left}
	default:
		return player
	}
}

// travel displaces an enemy that entered from edge d by step pixels, away from
// its edge and towards the opposite one.
func (d Direction) travel(p Position, step int) Position {
	switch d {
	case DirUp:
		p.Top += step
	case DirDown:
		p.Top -= step
	case DirLeft:
		p.Left += step
	case DirRight:
		p.Left -= step
	}
	return p
}

// Enemy is a square that moves in a straight line from its edge of origin.
type Enemy struct {
	Position
	ID     uint64    // Stable key in spawn order
	Dir    Direction // Edge of origin, fixed at spawn
	Marked bool      // Left the arena; dropped on the next motion tick
}

// MoveCommand is a player move request: a heading plus its unit delta.
type MoveCommand struct {
	Dir  Direction
	Top  int
	Left int
}

// Move builds the command for a heading with its matching delta.
func Move(d Direction) MoveCommand {
	top, left := d.Delta()
	return MoveCommand{Dir: d, Top: top, Left: left}
}

// wellFormed reports whether the delta is the one implied by the heading.
func (c MoveCommand) wellFormed() bool {
	top, left := c.Dir.Delta()
	return c.Dir.Valid() && c.Top == top && c.Left == left
}
