package systems

import (
	"testing"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

func assertOrthogonalSteps(t *testing.T, path []domain.GridPosition) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if path[i-1].ManhattanTo(path[i]) != 1 {
			t.Errorf("step %d: %v -> %v is not a unit orthogonal move", i, path[i-1], path[i])
		}
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	g := domain.NewGrid(10, 10)
	start := domain.GridPosition{X: 0, Y: 0}
	goal := domain.GridPosition{X: 9, Y: 9}

	path := FindPath(g, start, goal, 0)
	if path == nil {
		t.Fatal("expected a path on an open grid")
	}
	// Manhattan distance 18, so the optimal path holds 19 cells.
	if len(path) != 19 {
		t.Errorf("path length = %d, want 19", len(path))
	}
	if path[0] != start {
		t.Errorf("path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], goal)
	}
	assertOrthogonalSteps(t, path)
}

func TestFindPathRoutesAroundObstacle(t *testing.T) {
	g := domain.NewGrid(10, 10)
	blocked := domain.GridPosition{X: 5, Y: 5}
	g.SetTile(blocked, domain.Tile{Kind: domain.TileBlocked})

	start := domain.GridPosition{X: 5, Y: 0}
	goal := domain.GridPosition{X: 5, Y: 9}
	path := FindPath(g, start, goal, 0)
	if path == nil {
		t.Fatal("expected a detour path")
	}
	// The straight line holds 10 cells; one blocked cell forces a two-step
	// detour, so 12.
	if len(path) != 12 {
		t.Errorf("path length = %d, want 12", len(path))
	}
	for _, p := range path {
		if p == blocked {
			t.Errorf("path passes through the blocked cell %v", p)
		}
	}
	assertOrthogonalSteps(t, path)
}

func TestFindPathAvoidsFullCorruption(t *testing.T) {
	g := domain.NewGrid(8, 8)
	// Corruption wall across the middle with one gap at x=6.
	for x := 0; x < 7; x++ {
		g.SetTile(domain.GridPosition{X: x, Y: 4}, domain.Tile{Kind: domain.TileEmpty, Corruption: domain.MaxCorruption})
	}

	path := FindPath(g, domain.GridPosition{X: 1, Y: 1}, domain.GridPosition{X: 1, Y: 7}, 0)
	if path == nil {
		t.Fatal("expected a path through the gap")
	}
	for _, p := range path {
		tile, _ := g.TileAt(p)
		if !tile.IsWalkable() {
			t.Errorf("path contains non-walkable cell %v", p)
		}
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	g := domain.NewGrid(10, 10)

	t.Run("start equals goal", func(t *testing.T) {
		pos := domain.GridPosition{X: 3, Y: 3}
		g.SetTile(pos, domain.Tile{Kind: domain.TileBlocked})
		path := FindPath(g, pos, pos, 0)
		if len(path) != 1 || path[0] != pos {
			t.Errorf("path = %v, want single-element [%v]", path, pos)
		}
		g.SetTile(pos, domain.Tile{Kind: domain.TileEmpty})
	})

	t.Run("goal not walkable", func(t *testing.T) {
		goal := domain.GridPosition{X: 7, Y: 7}
		g.SetTile(goal, domain.Tile{Kind: domain.TileBlocked})
		if path := FindPath(g, domain.GridPosition{X: 0, Y: 0}, goal, 0); path != nil {
			t.Errorf("path to a blocked goal = %v, want nil", path)
		}
		g.SetTile(goal, domain.Tile{Kind: domain.TileEmpty})
	})

	t.Run("goal sealed off", func(t *testing.T) {
		sealed := domain.NewGrid(10, 10)
		goal := domain.GridPosition{X: 5, Y: 5}
		for _, n := range sealed.OrthogonalNeighbors(goal) {
			sealed.SetTile(n, domain.Tile{Kind: domain.TileBlocked})
		}
		if path := FindPath(sealed, domain.GridPosition{X: 0, Y: 0}, goal, 0); path != nil {
			t.Errorf("path to a sealed goal = %v, want nil", path)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		if path := FindPath(g, domain.GridPosition{X: -1, Y: 0}, domain.GridPosition{X: 5, Y: 5}, 0); path != nil {
			t.Error("out-of-bounds start should give nil")
		}
		if path := FindPath(g, domain.GridPosition{X: 0, Y: 0}, domain.GridPosition{X: 10, Y: 0}, 0); path != nil {
			t.Error("out-of-bounds goal should give nil")
		}
	})

	t.Run("iteration budget exhausted", func(t *testing.T) {
		if path := FindPath(g, domain.GridPosition{X: 0, Y: 0}, domain.GridPosition{X: 9, Y: 9}, 3); path != nil {
			t.Errorf("budget of 3 expansions should collapse to nil, got %v", path)
		}
	})
}

func TestFindPathIsDeterministic(t *testing.T) {
	g := domain.NewGrid(12, 12)
	g.SetTile(domain.GridPosition{X: 4, Y: 4}, domain.Tile{Kind: domain.TileBlocked})
	g.SetTile(domain.GridPosition{X: 5, Y: 4}, domain.Tile{Kind: domain.TileBlocked})
	g.SetTile(domain.GridPosition{X: 6, Y: 6}, domain.Tile{Kind: domain.TileBlocked})

	start := domain.GridPosition{X: 1, Y: 1}
	goal := domain.GridPosition{X: 10, Y: 10}

	first := FindPath(g, start, goal, 0)
	for i := 0; i < 10; i++ {
		again := FindPath(g, start, goal, 0)
		if len(again) != len(first) {
			t.Fatalf("run %d: path length %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: path[%d] = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestNextStep(t *testing.T) {
	g := domain.NewGrid(10, 10)

	step, ok := NextStep(g, domain.GridPosition{X: 0, Y: 0}, domain.GridPosition{X: 3, Y: 0})
	if !ok {
		t.Fatal("expected a next step on an open grid")
	}
	if step.ManhattanTo(domain.GridPosition{X: 0, Y: 0}) != 1 {
		t.Errorf("next step %v is not adjacent to the start", step)
	}

	if _, ok := NextStep(g, domain.GridPosition{X: 2, Y: 2}, domain.GridPosition{X: 2, Y: 2}); ok {
		t.Error("from == to should yield no step")
	}

	g.SetTile(domain.GridPosition{X: 5, Y: 5}, domain.Tile{Kind: domain.TileBlocked})
	if _, ok := NextStep(g, domain.GridPosition{X: 0, Y: 0}, domain.GridPosition{X: 5, Y: 5}); ok {
		t.Error("unreachable goal should yield no step")
	}
}

func TestReachablePositions(t *testing.T) {
	g := domain.NewGrid(10, 10)
	start := domain.GridPosition{X: 5, Y: 5}

	t.Run("distance zero", func(t *testing.T) {
		if out := ReachablePositions(g, start, 0); out != nil {
			t.Errorf("maxDistance 0 should give nil, got %v", out)
		}
	})

	t.Run("open diamond", func(t *testing.T) {
		out := ReachablePositions(g, start, 2)
		// Manhattan diamond of radius 2 minus the start cell.
		if len(out) != 12 {
			t.Fatalf("reachable count = %d, want 12", len(out))
		}
		seen := map[domain.GridPosition]bool{}
		for _, p := range out {
			if p == start {
				t.Error("result contains the start cell")
			}
			if start.ManhattanTo(p) > 2 {
				t.Errorf("cell %v is beyond distance 2", p)
			}
			if seen[p] {
				t.Errorf("duplicate cell %v", p)
			}
			seen[p] = true
		}
	})

	t.Run("walls shrink the set", func(t *testing.T) {
		walled := domain.NewGrid(10, 10)
		// Seal the start cell except one exit to the east.
		walled.SetTile(domain.GridPosition{X: 5, Y: 4}, domain.Tile{Kind: domain.TileBlocked})
		walled.SetTile(domain.GridPosition{X: 5, Y: 6}, domain.Tile{Kind: domain.TileBlocked})
		walled.SetTile(domain.GridPosition{X: 4, Y: 5}, domain.Tile{Kind: domain.TileBlocked})

		out := ReachablePositions(walled, start, 1)
		if len(out) != 1 || out[0] != (domain.GridPosition{X: 6, Y: 5}) {
			t.Errorf("reachable = %v, want only (6, 5)", out)
		}
	})
}
