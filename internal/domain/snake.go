package domain

// SnakeBoardSize is the width and height of the snake grid
const SnakeBoardSize = 12

// Cell is a position on the snake grid; (0,0) is the top-left corner
type Cell struct {
	X int
	Y int
}

// Direction is one of the four snake headings
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Step returns the neighbouring cell in direction d
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{c.X, c.Y - 1}
	case DirDown:
		return Cell{c.X, c.Y + 1}
	case DirLeft:
		return Cell{c.X - 1, c.Y}
	default:
		return Cell{c.X + 1, c.Y}
	}
}

// InBounds reports whether the cell lies on a size×size grid
func (c Cell) InBounds(size int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < size && c.Y < size
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}
