package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/internal/systems"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// Simulator advances expeditions one tick at a time. One tick is one
// complete, non-interruptible pass through the eight phases; every
// randomized decision draws from Rng, so a seeded simulator replays
// identically.
type Simulator struct {
	Matcher    BehaviorMatcher
	Difficulty domain.Difficulty
	Caps       map[domain.Difficulty]int
	Rng        *rand.Rand

	// Spawn builds replication children; nil falls back to parent cloning.
	Spawn systems.SpawnFunc
}

// NewSimulator builds a simulator with the default rule matcher and a
// generator seeded from seed.
func NewSimulator(seed int64, difficulty domain.Difficulty) *Simulator {
	return &Simulator{
		Matcher:    RuleMatcher{},
		Difficulty: difficulty,
		Rng:        rand.New(rand.NewSource(seed)),
	}
}

// ExecuteTick runs the phases in fixed order against a private clone of the
// input snapshot and returns the new snapshot plus the terminal-state
// verdict. The input snapshot is never touched.
//
// Phase order: behavior, movement, collection, process combat, adversarial
// AI, replication, dormant activation, win/loss evaluation.
func (s *Simulator) ExecuteTick(input *domain.Snapshot) (*domain.Snapshot, domain.Verdict) {
	snap := input.Clone()
	snap.Tick++

	s.runBehavior(snap)
	systems.AdvanceProcesses(snap)
	systems.CollectData(snap)
	systems.ResolveProcessStrikes(snap, s.Rng)
	systems.RunMalwareAI(snap, s.Rng)
	systems.Replicate(snap, domain.ReplicationCap(s.Difficulty, s.Caps), s.Rng, s.Spawn)
	systems.WakeDormant(snap)

	verdict := EvaluateVerdict(snap)

	logger.Log.WithFields(logrus.Fields{
		"component": "tick_engine",
		"tick":      snap.Tick,
		"verdict":   verdict,
		"processes": snap.LiveProcessCount(),
		"malware":   len(snap.Malware),
	}).Debug("Tick complete")

	return snap, verdict
}

// runBehavior is phase 1: evaluate each live process's rules and, when one
// triggers, compute and assign a fresh path. The matcher itself never moves
// anything; assigning the path (and the moving status that goes with it) is
// this orchestrator's job.
func (s *Simulator) runBehavior(snap *domain.Snapshot) {
	view := View{Snap: snap}
	for i := range snap.Processes {
		p := &snap.Processes[i]
		if !p.Alive() {
			continue
		}
		rule := s.Matcher.Evaluate(p, view, snap.Tick)
		if rule == nil {
			continue
		}

		var dest domain.GridPosition
		switch rule.Target {
		case domain.TargetHold:
			p.Path = nil
			p.PathIndex = 0
			if p.Status == domain.StatusMoving {
				p.Status = domain.StatusIdle
			}
			continue
		case domain.TargetFixed:
			if rule.Dest == nil {
				continue
			}
			dest = *rule.Dest
		case domain.TargetExit:
			exit, ok := view.NearestExit(p.Pos)
			if !ok {
				continue
			}
			dest = exit
		case domain.TargetNearestCache:
			cache, ok := view.NearestCache(p.Pos)
			if !ok {
				continue
			}
			dest = cache
		default:
			continue
		}

		if dest == p.Pos {
			continue
		}
		path := systems.FindPath(snap.Grid, p.Pos, dest, domain.DefaultMaxPathIterations)
		if len(path) < 2 {
			continue // unreachable right now, try again next tick
		}
		p.Path = path
		p.PathIndex = 0
		p.Status = domain.StatusMoving
	}
}

// EvaluateVerdict is phase 8. Defeat is checked first and takes precedence:
// a destroyed process parked on an exit point wins nothing.
func EvaluateVerdict(snap *domain.Snapshot) domain.Verdict {
	if snap.LiveProcessCount() == 0 {
		return domain.VerdictDefeat
	}
	for i := range snap.Processes {
		p := &snap.Processes[i]
		if !p.Alive() {
			continue
		}
		for _, exit := range snap.Sector.ExitPoints {
			if p.Pos == exit {
				return domain.VerdictVictory
			}
		}
	}
	return domain.VerdictActive
}
