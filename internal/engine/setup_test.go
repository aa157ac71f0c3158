package engine

import (
	"os"
	"testing"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testProcess(id string, pos domain.GridPosition) domain.Process {
	return domain.Process{
		ID:     id,
		Name:   id,
		Kind:   domain.ProcessKindScout,
		Pos:    pos,
		Status: domain.StatusIdle,
		Stats: domain.Stats{
			Health:          50,
			MaxHealth:       50,
			Attack:          10,
			Defense:         2,
			Speed:           1,
			ActionPoints:    2,
			MaxActionPoints: 2,
		},
	}
}

func testMalware(id, kind string, pos domain.GridPosition) domain.Malware {
	return domain.Malware{
		ID:     id,
		Kind:   kind,
		Pos:    pos,
		Status: domain.StatusActive,
		Stats: domain.Stats{
			Health:    30,
			MaxHealth: 30,
			Attack:    8,
			Defense:   1,
			Speed:     1,
		},
		AggroRange: 5,
		Mobile:     true,
		Revealed:   true,
	}
}

func testSnapshot(g *domain.Grid) *domain.Snapshot {
	return &domain.Snapshot{
		Grid: g,
		Log:  &domain.ExpeditionLog{},
		Sector: domain.SectorInfo{
			Name:       "sector-test",
			ExitPoints: []domain.GridPosition{{X: 8, Y: 8}},
		},
	}
}
