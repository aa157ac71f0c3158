package server

import (
	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/internal/engine"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/api"
)

// BuildView converts an expedition snapshot into the wire DTO. Concealed
// malware is filtered out here: the client only ever learns about hostiles
// that have been revealed.
func BuildView(exp *engine.Expedition, msgType string) api.ServerResponse {
	snap := exp.Snapshot

	resp := api.ServerResponse{
		Type:             msgType,
		ExpeditionID:     exp.ID,
		Tick:             snap.Tick,
		Verdict:          string(exp.Verdict),
		Grid:             &api.GridMeta{Width: snap.Grid.Width, Height: snap.Grid.Height},
		DataCollected:    snap.DataCollected,
		MalwareDestroyed: snap.MalwareDestroyed,
	}

	resp.Map = make([]api.TileView, 0, snap.Grid.Width*snap.Grid.Height)
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			tile := snap.Grid.Tiles[y][x]
			resp.Map = append(resp.Map, api.TileView{
				X:          x,
				Y:          y,
				Kind:       string(tile.Kind),
				Corruption: tile.Corruption,
				Walkable:   tile.IsWalkable(),
			})
		}
	}

	for i := range snap.Processes {
		p := &snap.Processes[i]
		pathLeft := 0
		if len(p.Path) > 0 {
			pathLeft = len(p.Path) - 1 - p.PathIndex
		}
		resp.Processes = append(resp.Processes, api.ProcessView{
			ID:       p.ID,
			Name:     p.Name,
			Kind:     p.Kind,
			Status:   string(p.Status),
			Pos:      api.Position{X: p.Pos.X, Y: p.Pos.Y},
			Stats:    statsView(p.Stats),
			PathLeft: pathLeft,
		})
	}

	for i := range snap.Malware {
		m := &snap.Malware[i]
		if !m.Revealed {
			continue
		}
		resp.Malware = append(resp.Malware, api.MalwareView{
			ID:     m.ID,
			Kind:   m.Kind,
			Status: string(m.Status),
			Pos:    api.Position{X: m.Pos.X, Y: m.Pos.Y},
			Stats:  statsView(m.Stats),
		})
	}

	for _, entry := range snap.Log.Entries {
		resp.Logs = append(resp.Logs, api.LogView{Tick: entry.Tick, Type: entry.Type, Text: entry.Text})
	}

	return resp
}

func statsView(s domain.Stats) api.StatsView {
	return api.StatsView{
		Health:          s.Health,
		MaxHealth:       s.MaxHealth,
		Attack:          s.Attack,
		Defense:         s.Defense,
		ActionPoints:    s.ActionPoints,
		MaxActionPoints: s.MaxActionPoints,
	}
}
