package world

// Direction names a side of a room, or its center.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Center
)

// Cardinals returns the four link directions in links-file order.
func Cardinals() []Direction {
	return []Direction{North, South, East, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// IsCardinal reports whether d is one of the four link directions.
func (d Direction) IsCardinal() bool {
	return d >= North && d <= West
}

// Opposite returns the reciprocal direction. Center is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column step for moving one cell in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
