package sector

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// Default sector dimensions.
const (
	DefaultWidth  = 24
	DefaultHeight = 24
)

// Counts of scattered features per sector.
const (
	blockedClusters  = 10
	corruptionFields = 6
	dataCaches       = 6
)

var malwarePerDifficulty = map[domain.Difficulty]int{
	domain.DifficultyEasy:   3,
	domain.DifficultyNormal: 5,
	domain.DifficultyHard:   8,
}

// Generate builds a complete starting snapshot for one expedition: a walled
// sector with blocked nodes, corruption fields and data caches, a process
// squad on the spawn cluster and malware scattered across the far half.
// Deterministic per seed.
func Generate(cat *Catalog, seed int64, difficulty domain.Difficulty) *domain.Snapshot {
	rng := rand.New(rand.NewSource(seed))
	grid := domain.NewGrid(DefaultWidth, DefaultHeight)

	// Perimeter firewall.
	for x := 0; x < grid.Width; x++ {
		grid.SetTile(domain.GridPosition{X: x, Y: 0}, domain.Tile{Kind: domain.TileBlocked})
		grid.SetTile(domain.GridPosition{X: x, Y: grid.Height - 1}, domain.Tile{Kind: domain.TileBlocked})
	}
	for y := 0; y < grid.Height; y++ {
		grid.SetTile(domain.GridPosition{X: 0, Y: y}, domain.Tile{Kind: domain.TileBlocked})
		grid.SetTile(domain.GridPosition{X: grid.Width - 1, Y: y}, domain.Tile{Kind: domain.TileBlocked})
	}

	// Scattered blocked nodes (2x2 clusters).
	for i := 0; i < blockedClusters; i++ {
		cx := 2 + rng.Intn(grid.Width-5)
		cy := 2 + rng.Intn(grid.Height-5)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				grid.SetTile(domain.GridPosition{X: cx + dx, Y: cy + dy}, domain.Tile{Kind: domain.TileBlocked})
			}
		}
	}

	// Corruption fields: partial corruption, still traversable.
	for i := 0; i < corruptionFields; i++ {
		pos := randomInterior(grid, rng)
		t, _ := grid.TileAt(pos)
		if t.Kind == domain.TileBlocked {
			continue
		}
		t.Corruption = 40 + rng.Intn(50)
		grid.SetTile(pos, t)
	}

	// Spawn cluster near the top-left corner, exit at the far corner.
	spawns := carveSpawns(grid)
	exit := domain.GridPosition{X: grid.Width - 3, Y: grid.Height - 3}
	grid.SetTile(exit, domain.Tile{Kind: domain.TileExit})

	// Data caches on free interior tiles.
	placed := 0
	for placed < dataCaches {
		pos := randomInterior(grid, rng)
		t, _ := grid.TileAt(pos)
		if t.Kind != domain.TileEmpty || pos == exit {
			continue
		}
		t.Kind = domain.TileCache
		grid.SetTile(pos, t)
		placed++
	}

	// The squad: one of each process kind on the spawn cluster.
	squad := []string{domain.ProcessKindScout, domain.ProcessKindGuardian, domain.ProcessKindHarvester}
	processes := make([]domain.Process, 0, len(squad))
	for i, kind := range squad {
		processes = append(processes, cat.CreateProcess(kind, spawns[i%len(spawns)], rng))
	}

	// Malware in the half of the sector away from the spawns.
	kinds := []string{
		domain.MalwareKindVirus,
		domain.MalwareKindWorm,
		domain.MalwareKindTrojan,
		domain.MalwareKindLogicBomb,
	}
	count := malwarePerDifficulty[difficulty]
	if count == 0 {
		count = malwarePerDifficulty[domain.DifficultyNormal]
	}
	malware := make([]domain.Malware, 0, count)
	for len(malware) < count {
		pos := randomInterior(grid, rng)
		if pos.X < grid.Width/2 && pos.Y < grid.Height/2 {
			continue // keep the spawn quadrant clear
		}
		if !grid.IsWalkable(pos) || pos == exit {
			continue
		}
		if domain.LiveMalwareAt(malware, pos) >= 0 {
			continue
		}
		kind := kinds[rng.Intn(len(kinds))]
		malware = append(malware, cat.CreateMalware(kind, pos, rng))
	}

	snap := &domain.Snapshot{
		Processes: processes,
		Malware:   malware,
		Grid:      grid,
		Log:       &domain.ExpeditionLog{},
		Sector: domain.SectorInfo{
			Name:        fmt.Sprintf("sector-%04x", uint16(seed)),
			ExitPoints:  []domain.GridPosition{exit},
			SpawnPoints: spawns,
		},
	}
	snap.Log.Append(0, domain.LogInfo, fmt.Sprintf("Expedition deployed into %s", snap.Sector.Name))

	logger.Log.WithFields(logrus.Fields{
		"component": "sector_generator",
		"sector":    snap.Sector.Name,
		"seed":      seed,
		"processes": len(processes),
		"malware":   len(malware),
	}).Info("Sector generated")

	return snap
}

// carveSpawns clears a 3-cell spawn row and marks it.
func carveSpawns(grid *domain.Grid) []domain.GridPosition {
	spawns := make([]domain.GridPosition, 0, 3)
	for i := 0; i < 3; i++ {
		pos := domain.GridPosition{X: 2 + i, Y: 2}
		grid.SetTile(pos, domain.Tile{Kind: domain.TileSpawn})
		spawns = append(spawns, pos)
	}
	return spawns
}

func randomInterior(grid *domain.Grid, rng *rand.Rand) domain.GridPosition {
	return domain.GridPosition{
		X: 1 + rng.Intn(grid.Width-2),
		Y: 1 + rng.Intn(grid.Height-2),
	}
}
