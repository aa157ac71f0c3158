package systems

import (
	"fmt"
	"math/rand"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// RunMalwareAI is the adversarial AI phase. Destroyed and dormant malware is
// skipped entirely (dormant instances wake in their own phase). For the
// rest, in collection order:
//
//  1. tick down the ability cooldown (floored at 0);
//  2. if a live process is orthogonally adjacent, attack one chosen
//     uniformly among the adjacent candidates and become alerted+revealed;
//  3. otherwise, if a live process is inside the aggro range, become
//     alerted; aggro costs the tick, movement starts next tick;
//  4. otherwise, if already alerted, mobile and a target is in range, take
//     one greedy step toward the nearest one: horizontal axis first, then
//     vertical, skipping cells that are non-walkable or hold another live
//     malware. Both axes blocked means the malware stays put.
func RunMalwareAI(snap *domain.Snapshot, rng *rand.Rand) {
	for i := range snap.Malware {
		m := &snap.Malware[i]
		if !m.Alive() || m.Status == domain.StatusDormant {
			continue
		}

		if m.Cooldown > 0 {
			m.Cooldown--
		}

		var adjacent []int
		for j := range snap.Processes {
			if snap.Processes[j].Alive() && m.Pos.OrthogonallyAdjacentTo(snap.Processes[j].Pos) {
				adjacent = append(adjacent, j)
			}
		}
		if len(adjacent) > 0 {
			j := adjacent[rng.Intn(len(adjacent))]
			p := &snap.Processes[j]
			res := ResolveAttack(m.Stats, &p.Stats, rng)
			m.Status = domain.StatusAlerted
			m.Revealed = true
			if res.Destroyed {
				p.Status = domain.StatusDestroyed
				snap.Log.Append(snap.Tick, domain.LogCombat,
					fmt.Sprintf("%s terminated %s (%d damage)", m.Kind, p.Name, res.Damage))
			} else {
				snap.Log.Append(snap.Tick, domain.LogCombat,
					fmt.Sprintf("%s hit %s for %d damage", m.Kind, p.Name, res.Damage))
			}
			continue
		}

		target, best := -1, 0
		for j := range snap.Processes {
			p := &snap.Processes[j]
			if !p.Alive() {
				continue
			}
			d := m.Pos.ManhattanTo(p.Pos)
			if d <= m.AggroRange && (target < 0 || d < best) {
				target, best = j, d
			}
		}
		if target < 0 {
			continue
		}

		if m.Status != domain.StatusAlerted {
			m.Status = domain.StatusAlerted
			continue
		}
		if !m.Mobile || m.Stats.Speed == 0 {
			continue
		}

		dx, dy := m.Pos.DirectionTo(snap.Processes[target].Pos)
		if dx != 0 {
			if cand := m.Pos.Shift(dx, 0); malwareCanOccupy(snap, cand, i) {
				m.Pos = cand
				continue
			}
		}
		if dy != 0 {
			if cand := m.Pos.Shift(0, dy); malwareCanOccupy(snap, cand, i) {
				m.Pos = cand
			}
		}
	}
}

func malwareCanOccupy(snap *domain.Snapshot, pos domain.GridPosition, self int) bool {
	if !snap.Grid.IsWalkable(pos) {
		return false
	}
	if j := domain.LiveMalwareAt(snap.Malware, pos); j >= 0 && j != self {
		return false
	}
	return true
}
