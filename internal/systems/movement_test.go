package systems

import (
	"testing"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

func walkPath(from domain.GridPosition, steps ...domain.GridPosition) []domain.GridPosition {
	return append([]domain.GridPosition{from}, steps...)
}

func TestAdvanceProcessesWalksOneCell(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Status = domain.StatusMoving
	p.Path = walkPath(p.Pos, domain.GridPosition{X: 2, Y: 1}, domain.GridPosition{X: 3, Y: 1})
	snap.Processes = []domain.Process{p}

	AdvanceProcesses(snap)

	got := snap.Processes[0]
	if got.Pos != (domain.GridPosition{X: 2, Y: 1}) {
		t.Errorf("pos = %v, want (2, 1)", got.Pos)
	}
	if got.PathIndex != 1 {
		t.Errorf("path index = %d, want 1", got.PathIndex)
	}
	if got.Status != domain.StatusMoving {
		t.Errorf("status = %s, want moving mid-path", got.Status)
	}
}

func TestAdvanceProcessesFinishesPath(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Status = domain.StatusMoving
	p.Path = walkPath(p.Pos, domain.GridPosition{X: 1, Y: 2})
	snap.Processes = []domain.Process{p}

	AdvanceProcesses(snap)

	got := snap.Processes[0]
	if got.Pos != (domain.GridPosition{X: 1, Y: 2}) {
		t.Errorf("pos = %v, want (1, 2)", got.Pos)
	}
	if got.Status != domain.StatusIdle {
		t.Errorf("status = %s, want idle at destination", got.Status)
	}
	if got.Path != nil || got.PathIndex != 0 {
		t.Errorf("path not cleared: %v / %d", got.Path, got.PathIndex)
	}
}

func TestAdvanceProcessesBlockedCellStalls(t *testing.T) {
	g := domain.NewGrid(10, 10)
	snap := testSnapshot(g)
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Status = domain.StatusMoving
	p.Path = walkPath(p.Pos, domain.GridPosition{X: 2, Y: 1}, domain.GridPosition{X: 3, Y: 1})
	snap.Processes = []domain.Process{p}

	// Obstruction appears after the path was computed.
	g.SetTile(domain.GridPosition{X: 2, Y: 1}, domain.Tile{Kind: domain.TileBlocked})
	AdvanceProcesses(snap)

	got := snap.Processes[0]
	if got.Pos != (domain.GridPosition{X: 1, Y: 1}) {
		t.Errorf("pos = %v, want unchanged (1, 1)", got.Pos)
	}
	if got.Status != domain.StatusMoving {
		t.Errorf("status = %s, want still moving (retry next tick)", got.Status)
	}

	// Once the obstruction clears, the walk resumes.
	g.SetTile(domain.GridPosition{X: 2, Y: 1}, domain.Tile{Kind: domain.TileEmpty})
	AdvanceProcesses(snap)
	if snap.Processes[0].Pos != (domain.GridPosition{X: 2, Y: 1}) {
		t.Errorf("pos = %v, want (2, 1) after the cell cleared", snap.Processes[0].Pos)
	}
}

func TestAdvanceProcessesOccupiedCellStalls(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	mover := testProcess("mover", domain.GridPosition{X: 1, Y: 1})
	mover.Status = domain.StatusMoving
	mover.Path = walkPath(mover.Pos, domain.GridPosition{X: 2, Y: 1})
	blocker := testProcess("blocker", domain.GridPosition{X: 2, Y: 1})
	snap.Processes = []domain.Process{mover, blocker}

	AdvanceProcesses(snap)
	if snap.Processes[0].Pos != (domain.GridPosition{X: 1, Y: 1}) {
		t.Errorf("pos = %v, want stalled behind the live blocker", snap.Processes[0].Pos)
	}

	// A destroyed process does not occupy its cell.
	snap.Processes[1].Status = domain.StatusDestroyed
	AdvanceProcesses(snap)
	if snap.Processes[0].Pos != (domain.GridPosition{X: 2, Y: 1}) {
		t.Errorf("pos = %v, want (2, 1) over the destroyed blocker", snap.Processes[0].Pos)
	}
}

func TestAdvanceProcessesUpkeep(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Stats.ActionPoints = 0
	p.Effects = []domain.StatusEffect{
		{Name: "slow", Duration: 2},
		{Name: "fading", Duration: 1},
		{Name: "corrupted", Duration: domain.EffectPermanent},
	}
	snap.Processes = []domain.Process{p}

	AdvanceProcesses(snap)

	got := snap.Processes[0]
	if got.Stats.ActionPoints != got.Stats.MaxActionPoints {
		t.Errorf("action points = %d, want reset to %d", got.Stats.ActionPoints, got.Stats.MaxActionPoints)
	}
	if len(got.Effects) != 2 {
		t.Fatalf("effects = %v, want the expired one dropped", got.Effects)
	}
	if got.Effects[0].Duration != 1 {
		t.Errorf("slow duration = %d, want 1", got.Effects[0].Duration)
	}
	if got.Effects[1].Duration != domain.EffectPermanent {
		t.Errorf("permanent effect duration = %d, want %d", got.Effects[1].Duration, domain.EffectPermanent)
	}
}
