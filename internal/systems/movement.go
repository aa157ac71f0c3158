package systems

import (
	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// AdvanceProcesses is the movement phase. For every process it first decays
// status effects and resets action points to max; then, for processes in
// moving status with a path left to walk, it advances the path cursor one
// cell. A next cell that is out of bounds, non-walkable or occupied by
// another live process leaves the entity where it is this tick. That is a
// soft failure, retried next tick once the obstruction clears or a new path
// is assigned. Reaching the final cell clears the path and returns the process
// to idle.
func AdvanceProcesses(snap *domain.Snapshot) {
	for i := range snap.Processes {
		p := &snap.Processes[i]

		p.Effects = domain.DecayEffects(p.Effects)
		p.Stats.ActionPoints = p.Stats.MaxActionPoints

		if p.Status != domain.StatusMoving || len(p.Path) == 0 {
			continue
		}
		if p.PathIndex >= len(p.Path)-1 {
			// Cursor already at the end; nothing left to walk.
			clearPath(p)
			continue
		}

		next := p.Path[p.PathIndex+1]
		if !snap.Grid.IsWalkable(next) {
			continue
		}
		if j := domain.LiveProcessAt(snap.Processes, next); j >= 0 && j != i {
			continue
		}

		p.PathIndex++
		p.Pos = next

		if p.PathIndex == len(p.Path)-1 {
			clearPath(p)
		}
	}
}

func clearPath(p *domain.Process) {
	p.Path = nil
	p.PathIndex = 0
	p.Status = domain.StatusIdle
}
