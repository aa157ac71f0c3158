package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/internal/systems"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/sector"
)

// Expedition is one running simulation: a snapshot, its simulator and the
// last computed verdict.
type Expedition struct {
	ID       string
	Seed     int64
	Snapshot *domain.Snapshot
	Verdict  domain.Verdict
	sim      *Simulator
}

// Service owns all running expeditions. All mutation goes through the
// service lock; inside one expedition the tick itself is single-threaded by
// construction.
type Service struct {
	mu          sync.RWMutex
	expeditions map[string]*Expedition

	cfg     Config
	catalog *sector.Catalog
}

// NewService loads the kind catalog and prepares an empty expedition
// registry.
func NewService(cfg Config) (*Service, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{
		expeditions: make(map[string]*Expedition),
		cfg:         cfg,
		catalog:     cat,
	}, nil
}

func loadCatalog(cfg Config) (*sector.Catalog, error) {
	if cfg.CatalogPath != "" {
		return sector.LoadCatalogFile(cfg.CatalogPath)
	}
	return sector.LoadCatalog()
}

// Catalog exposes the loaded kind catalog (read-only).
func (s *Service) Catalog() *sector.Catalog {
	return s.catalog
}

// StartExpedition generates a sector from the given seed (0 derives one from
// the master seed and the registry size) and registers a fresh expedition.
func (s *Service) StartExpedition(seed int64, difficulty domain.Difficulty) *Expedition {
	s.mu.Lock()
	defer s.mu.Unlock()

	if difficulty == "" {
		difficulty = s.cfg.Difficulty
	}
	if seed == 0 {
		seed = s.cfg.Seed + int64(len(s.expeditions)) + 1
	}

	snap := sector.Generate(s.catalog, seed, difficulty)
	sim := NewSimulator(seed, difficulty)
	sim.Caps = s.catalog.ReplicationCaps
	sim.Spawn = func(parent domain.Malware, pos domain.GridPosition) domain.Malware {
		return s.catalog.CreateMalware(parent.Kind, pos, sim.Rng)
	}

	exp := &Expedition{
		ID:       uuid.NewString(),
		Seed:     seed,
		Snapshot: snap,
		Verdict:  domain.VerdictActive,
		sim:      sim,
	}
	s.expeditions[exp.ID] = exp

	logger.Log.WithFields(logrus.Fields{
		"component":  "engine_service",
		"expedition": exp.ID,
		"seed":       seed,
		"difficulty": difficulty,
	}).Info("Expedition started")

	return exp
}

// Get looks up an expedition by id.
func (s *Service) Get(id string) (*Expedition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exp, ok := s.expeditions[id]
	return exp, ok
}

// Expeditions returns a copy of the registry for inspection endpoints.
func (s *Service) Expeditions() []*Expedition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Expedition, 0, len(s.expeditions))
	for _, exp := range s.expeditions {
		out = append(out, exp)
	}
	return out
}

// Step advances an expedition by count ticks (at least one), stopping early
// once the verdict turns terminal. Stepping a finished expedition is a no-op
// that reports the existing verdict.
func (s *Service) Step(id string, count int) (*domain.Snapshot, domain.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expeditions[id]
	if !ok {
		return nil, "", fmt.Errorf("expedition %s not found", id)
	}
	if count < 1 {
		count = 1
	}

	for i := 0; i < count && exp.Verdict == domain.VerdictActive; i++ {
		exp.Snapshot, exp.Verdict = exp.sim.ExecuteTick(exp.Snapshot)
	}
	return exp.Snapshot, exp.Verdict, nil
}

// AssignPath computes a path for one process outside the tick loop and
// stores it, putting the process in moving status. "No path" is an error at
// this boundary because the caller asked for that specific route.
func (s *Service) AssignPath(id, processID string, goal domain.GridPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expeditions[id]
	if !ok {
		return fmt.Errorf("expedition %s not found", id)
	}

	snap := exp.Snapshot
	var proc *domain.Process
	for i := range snap.Processes {
		if snap.Processes[i].ID == processID {
			proc = &snap.Processes[i]
			break
		}
	}
	if proc == nil {
		return fmt.Errorf("process %s not found", processID)
	}
	if !proc.Alive() {
		return fmt.Errorf("process %s is destroyed", processID)
	}

	path := systems.FindPath(snap.Grid, proc.Pos, goal, domain.DefaultMaxPathIterations)
	if path == nil {
		return fmt.Errorf("no path from (%d, %d) to (%d, %d)", proc.Pos.X, proc.Pos.Y, goal.X, goal.Y)
	}
	if len(path) < 2 {
		return nil // already there
	}
	proc.Path = path
	proc.PathIndex = 0
	proc.Status = domain.StatusMoving
	return nil
}
