package engine

import (
	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/internal/systems"
)

// ProcessSightRadius bounds how far a process notices revealed malware for
// the enemy-visible rule condition.
const ProcessSightRadius = 8

// View is the read-only world slice handed to the behavior matcher.
type View struct {
	Snap *domain.Snapshot
}

// NearestCache finds the closest remaining data cache by Manhattan distance.
func (v View) NearestCache(from domain.GridPosition) (domain.GridPosition, bool) {
	best := domain.GridPosition{}
	bestDist := -1
	for y := 0; y < v.Snap.Grid.Height; y++ {
		for x := 0; x < v.Snap.Grid.Width; x++ {
			pos := domain.GridPosition{X: x, Y: y}
			t, _ := v.Snap.Grid.TileAt(pos)
			if t.Kind != domain.TileCache {
				continue
			}
			d := from.ManhattanTo(pos)
			if bestDist < 0 || d < bestDist {
				best, bestDist = pos, d
			}
		}
	}
	return best, bestDist >= 0
}

// NearestExit finds the closest configured exit point.
func (v View) NearestExit(from domain.GridPosition) (domain.GridPosition, bool) {
	best := domain.GridPosition{}
	bestDist := -1
	for _, exit := range v.Snap.Sector.ExitPoints {
		d := from.ManhattanTo(exit)
		if bestDist < 0 || d < bestDist {
			best, bestDist = exit, d
		}
	}
	return best, bestDist >= 0
}

// EnemyVisible reports whether any live revealed malware is inside the
// process's sight radius with a clear line of sight.
func (v View) EnemyVisible(p *domain.Process) bool {
	for i := range v.Snap.Malware {
		m := &v.Snap.Malware[i]
		if !m.Alive() || !m.Revealed {
			continue
		}
		if p.Pos.ManhattanTo(m.Pos) > ProcessSightRadius {
			continue
		}
		if systems.HasLineOfSight(v.Snap.Grid, p.Pos, m.Pos) {
			return true
		}
	}
	return false
}

// BehaviorMatcher decides what a process wants this tick. Implementations
// must be pure: the returned rule may only result in a new movement target,
// never in direct stat or status changes.
type BehaviorMatcher interface {
	Evaluate(p *domain.Process, view View, tick int) *domain.BehaviorRule
}

// RuleMatcher is the default matcher: it walks the process's ordered rule
// list and returns the first rule whose condition holds.
type RuleMatcher struct{}

// Evaluate implements BehaviorMatcher.
func (RuleMatcher) Evaluate(p *domain.Process, view View, tick int) *domain.BehaviorRule {
	for i := range p.Rules {
		rule := &p.Rules[i]
		if matches(rule, p, view, tick) {
			return rule
		}
	}
	return nil
}

func matches(rule *domain.BehaviorRule, p *domain.Process, view View, tick int) bool {
	switch rule.Condition {
	case domain.CondAlways:
		return true
	case domain.CondEnemyVisible:
		return view.EnemyVisible(p)
	case domain.CondOnCache:
		t, ok := view.Snap.Grid.TileAt(p.Pos)
		return ok && t.Kind == domain.TileCache
	case domain.CondIdle:
		return len(p.Path) == 0
	case domain.CondEveryTicks:
		return rule.Interval > 0 && tick%rule.Interval == 0
	default:
		return false
	}
}
