package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// VisiblePositions returns every in-bounds cell within Manhattan distance
// radius of from that has line of sight from it, the observer's own cell
// included. The diamond is scanned row by row, so the result order is
// deterministic and duplicate-free.
func VisiblePositions(g *domain.Grid, from domain.GridPosition, radius int) []domain.GridPosition {
	if radius < 0 || !g.InBounds(from) {
		return nil
	}

	var out []domain.GridPosition
	for dy := -radius; dy <= radius; dy++ {
		span := radius - abs(dy)
		for dx := -span; dx <= span; dx++ {
			cell := from.Shift(dx, dy)
			if !g.InBounds(cell) {
				continue
			}
			if HasLineOfSight(g, from, cell) {
				out = append(out, cell)
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "fov_system",
		"observer_pos":  from,
		"radius":        radius,
		"visible_cells": len(out),
	}).Debug("Visibility set computed")

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
