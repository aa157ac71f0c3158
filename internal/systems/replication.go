package systems

import (
	"fmt"
	"math/rand"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// SpawnFunc builds a fresh malware instance for a replication spawn. The
// engine wires this to the sector factory; a nil func falls back to cloning
// the parent.
type SpawnFunc func(parent domain.Malware, pos domain.GridPosition) domain.Malware

// Replicate is the replication phase. Worms that are alive, awake and off
// cooldown spawn a copy onto a free orthogonal neighbor, bounded by the
// difficulty-scaled population cap. The cap counts live worms including
// those spawned earlier in this same phase; occupancy checks see them too.
// Running at or over the cap skips the phase silently: that is a capacity
// limit, not a failure.
func Replicate(snap *domain.Snapshot, populationCap int, rng *rand.Rand, spawn SpawnFunc) {
	live := 0
	for i := range snap.Malware {
		if snap.Malware[i].Alive() && snap.Malware[i].Replicates() {
			live++
		}
	}
	if live >= populationCap {
		return
	}

	total := live
	// Only instances present before the phase started are eligible parents.
	parents := len(snap.Malware)
	for i := 0; i < parents; i++ {
		m := &snap.Malware[i]
		if !m.Replicates() || !m.Alive() || m.Status == domain.StatusDormant || m.Cooldown != 0 {
			continue
		}
		if total >= populationCap {
			break
		}

		var candidates []domain.GridPosition
		for _, n := range snap.Grid.OrthogonalNeighbors(m.Pos) {
			if !snap.Grid.IsWalkable(n) {
				continue
			}
			if domain.LiveProcessAt(snap.Processes, n) >= 0 {
				continue
			}
			if domain.LiveMalwareAt(snap.Malware, n) >= 0 {
				continue
			}
			candidates = append(candidates, n)
		}
		if len(candidates) == 0 {
			continue
		}

		pos := candidates[rng.Intn(len(candidates))]
		var child domain.Malware
		if spawn != nil {
			child = spawn(*m, pos)
		} else {
			child = m.Clone()
			child.ID = fmt.Sprintf("%s-r%d", m.ID, snap.Tick)
			child.Pos = pos
			child.Status = domain.StatusActive
			child.Stats.Health = child.Stats.MaxHealth
			child.Cooldown = child.AbilityCooldown
			if child.Cooldown == 0 {
				child.Cooldown = domain.DefaultReplicationCooldown
			}
		}
		snap.Malware = append(snap.Malware, child)
		// Appending may move the backing array; reacquire the parent.
		m = &snap.Malware[i]

		m.Cooldown = m.AbilityCooldown
		if m.Cooldown == 0 {
			m.Cooldown = domain.DefaultReplicationCooldown
		}
		total++
		snap.Log.Append(snap.Tick, domain.LogSystem,
			fmt.Sprintf("%s replicated at (%d, %d)", m.Kind, pos.X, pos.Y))
	}
}
