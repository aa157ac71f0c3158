package systems

import (
	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// HasLineOfSight checks straight-line visibility between two cells using
// integer-only Bresenham rasterization. Sight is blocked by any non-walkable
// *intermediate* cell; the endpoints themselves never block, so a blocked
// destination can still be seen. Visibility is about the line, not the
// target's occupancy.
//
// The trace always runs from the lexicographically smaller endpoint so that
// HasLineOfSight(a, b) == HasLineOfSight(b, a) for every pair, not just for
// lines Bresenham happens to rasterize identically in both directions.
func HasLineOfSight(g *domain.Grid, from, to domain.GridPosition) bool {
	if from == to {
		return true
	}

	p1, p2 := from, to
	if p2.Before(p1) {
		p1, p2 = p2, p1
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)
	err := dx - dy

	for {
		cur := domain.GridPosition{X: x0, Y: y0}
		if cur != p1 && cur != p2 && !g.IsWalkable(cur) {
			return false
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
