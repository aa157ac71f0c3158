package systems

import (
	"fmt"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// CollectData is the resource collection phase: every live process standing
// on a data cache consumes it. The tile reverts to empty and the snapshot's
// collected counter advances. Tile writes happen on a defensive grid copy so
// the pre-tick grid stays an independent value.
func CollectData(snap *domain.Snapshot) {
	cloned := false
	for i := range snap.Processes {
		p := &snap.Processes[i]
		if !p.Alive() {
			continue
		}
		tile, ok := snap.Grid.TileAt(p.Pos)
		if !ok || tile.Kind != domain.TileCache {
			continue
		}

		if !cloned {
			snap.Grid = snap.Grid.Clone()
			cloned = true
		}
		tile.Kind = domain.TileEmpty
		snap.Grid.SetTile(p.Pos, tile)
		snap.DataCollected++
		snap.Log.Append(snap.Tick, domain.LogInfo,
			fmt.Sprintf("%s extracted a data cache at (%d, %d)", p.Name, p.Pos.X, p.Pos.Y))
	}
}
