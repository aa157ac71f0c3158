package domain

// GridPosition is an integer cell coordinate. Plain value type: copy freely,
// no ownership semantics.
type GridPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo returns the orthogonal step distance to another cell.
func (p GridPosition) ManhattanTo(other GridPosition) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Shift returns a new position offset by (dx, dy) without touching the
// receiver (structs are passed by value).
func (p GridPosition) Shift(dx, dy int) GridPosition {
	return GridPosition{X: p.X + dx, Y: p.Y + dy}
}

// OrthogonallyAdjacentTo reports whether the other cell is exactly one
// orthogonal step away. Diagonals do not count.
func (p GridPosition) OrthogonallyAdjacentTo(other GridPosition) bool {
	return p.ManhattanTo(other) == 1
}

// DirectionTo returns the unit sign of the delta towards another point.
func (p GridPosition) DirectionTo(other GridPosition) (dx, dy int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

// Before orders positions lexicographically (X, then Y).
func (p GridPosition) Before(other GridPosition) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
