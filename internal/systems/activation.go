package systems

import (
	"fmt"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// WakeDormant is the dormant-activation phase. A dormant malware with a live
// process on an orthogonally adjacent cell wakes: it becomes alerted and
// revealed, and an awaken line goes to the log. Everything else is left
// untouched; dormant -> alerted is the only transition this phase performs.
func WakeDormant(snap *domain.Snapshot) {
	for i := range snap.Malware {
		m := &snap.Malware[i]
		if m.Status != domain.StatusDormant {
			continue
		}
		for j := range snap.Processes {
			p := &snap.Processes[j]
			if p.Alive() && m.Pos.OrthogonallyAdjacentTo(p.Pos) {
				m.Status = domain.StatusAlerted
				m.Revealed = true
				snap.Log.Append(snap.Tick, domain.LogCombat,
					fmt.Sprintf("A %s awakens at (%d, %d)", m.Kind, m.Pos.X, m.Pos.Y))
				break
			}
		}
	}
}
