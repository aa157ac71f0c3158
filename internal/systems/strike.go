package systems

import (
	"fmt"
	"math/rand"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// ResolveProcessStrikes is the process combat phase. Each live process with
// at least one orthogonally adjacent live malware attacks exactly one: the
// first found in collection order. That tie-break is load-bearing for
// determinism, so it stays even though "weakest first" would play better.
// The struck malware is revealed whether or not it survives; a lethal hit
// marks it destroyed and advances the destroyed counter. The attacker
// transitions to attacking.
func ResolveProcessStrikes(snap *domain.Snapshot, rng *rand.Rand) {
	for i := range snap.Processes {
		p := &snap.Processes[i]
		if !p.Alive() {
			continue
		}

		target := -1
		for j := range snap.Malware {
			if snap.Malware[j].Alive() && p.Pos.OrthogonallyAdjacentTo(snap.Malware[j].Pos) {
				target = j
				break
			}
		}
		if target < 0 {
			continue
		}

		m := &snap.Malware[target]
		res := ResolveAttack(p.Stats, &m.Stats, rng)
		m.Revealed = true
		p.Status = domain.StatusAttacking

		if res.Destroyed {
			m.Status = domain.StatusDestroyed
			snap.MalwareDestroyed++
			snap.Log.Append(snap.Tick, domain.LogCombat,
				fmt.Sprintf("%s purged %s for %d damage", p.Name, m.Kind, res.Damage))
		} else {
			snap.Log.Append(snap.Tick, domain.LogCombat,
				fmt.Sprintf("%s struck %s for %d damage", p.Name, m.Kind, res.Damage))
		}
	}
}
