package engine

import (
	"testing"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

var matcher = RuleMatcher{}

func TestRuleMatcherFirstMatchWins(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Rules = []domain.BehaviorRule{
		{Name: "never", Condition: domain.CondOnCache, Target: domain.TargetExit},
		{Name: "first", Condition: domain.CondAlways, Target: domain.TargetHold},
		{Name: "shadowed", Condition: domain.CondAlways, Target: domain.TargetExit},
	}
	snap.Processes = []domain.Process{p}

	rule := matcher.Evaluate(&snap.Processes[0], View{Snap: snap}, 1)
	if rule == nil || rule.Name != "first" {
		t.Fatalf("matched rule = %v, want the first whose condition holds", rule)
	}
}

func TestRuleMatcherNoMatch(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
	p.Rules = []domain.BehaviorRule{
		{Name: "on-cache-only", Condition: domain.CondOnCache, Target: domain.TargetExit},
	}
	snap.Processes = []domain.Process{p}

	if rule := matcher.Evaluate(&snap.Processes[0], View{Snap: snap}, 1); rule != nil {
		t.Errorf("matched rule = %v, want nil", rule)
	}
}

func TestRuleConditions(t *testing.T) {
	g := domain.NewGrid(10, 10)
	g.SetTile(domain.GridPosition{X: 2, Y: 2}, domain.Tile{Kind: domain.TileCache})
	snap := testSnapshot(g)
	view := View{Snap: snap}

	t.Run("idle", func(t *testing.T) {
		p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
		p.Rules = []domain.BehaviorRule{{Condition: domain.CondIdle, Target: domain.TargetHold}}
		if matcher.Evaluate(&p, view, 1) == nil {
			t.Error("a process without a path is idle")
		}
		p.Path = []domain.GridPosition{{X: 1, Y: 1}, {X: 2, Y: 1}}
		if matcher.Evaluate(&p, view, 1) != nil {
			t.Error("a process mid-path is not idle")
		}
	})

	t.Run("on cache", func(t *testing.T) {
		p := testProcess("p1", domain.GridPosition{X: 2, Y: 2})
		p.Rules = []domain.BehaviorRule{{Condition: domain.CondOnCache, Target: domain.TargetHold}}
		if matcher.Evaluate(&p, view, 1) == nil {
			t.Error("standing on a cache should match")
		}
	})

	t.Run("every ticks", func(t *testing.T) {
		p := testProcess("p1", domain.GridPosition{X: 1, Y: 1})
		p.Rules = []domain.BehaviorRule{{Condition: domain.CondEveryTicks, Interval: 4, Target: domain.TargetHold}}
		if matcher.Evaluate(&p, view, 8) == nil {
			t.Error("tick 8 is a multiple of 4")
		}
		if matcher.Evaluate(&p, view, 9) != nil {
			t.Error("tick 9 is not a multiple of 4")
		}
	})
}

func TestViewEnemyVisible(t *testing.T) {
	g := domain.NewGrid(20, 20)
	snap := testSnapshot(g)
	p := testProcess("p1", domain.GridPosition{X: 5, Y: 5})
	snap.Processes = []domain.Process{p}

	m := testMalware("m1", domain.MalwareKindVirus, domain.GridPosition{X: 8, Y: 5})
	snap.Malware = []domain.Malware{m}
	view := View{Snap: snap}

	if !view.EnemyVisible(&snap.Processes[0]) {
		t.Error("a revealed malware in plain sight should be visible")
	}

	t.Run("concealed malware is invisible", func(t *testing.T) {
		snap.Malware[0].Revealed = false
		if view.EnemyVisible(&snap.Processes[0]) {
			t.Error("unrevealed malware must never trigger enemy-visible")
		}
		snap.Malware[0].Revealed = true
	})

	t.Run("out of sight radius", func(t *testing.T) {
		snap.Malware[0].Pos = domain.GridPosition{X: 5 + ProcessSightRadius + 1, Y: 5}
		if view.EnemyVisible(&snap.Processes[0]) {
			t.Error("malware beyond the sight radius must be invisible")
		}
		snap.Malware[0].Pos = m.Pos
	})

	t.Run("wall breaks sight", func(t *testing.T) {
		g.SetTile(domain.GridPosition{X: 6, Y: 5}, domain.Tile{Kind: domain.TileBlocked})
		g.SetTile(domain.GridPosition{X: 7, Y: 5}, domain.Tile{Kind: domain.TileBlocked})
		if view.EnemyVisible(&snap.Processes[0]) {
			t.Error("a wall between the two must break visibility")
		}
	})
}

func TestViewNearestCacheAndExit(t *testing.T) {
	g := domain.NewGrid(10, 10)
	g.SetTile(domain.GridPosition{X: 2, Y: 2}, domain.Tile{Kind: domain.TileCache})
	g.SetTile(domain.GridPosition{X: 8, Y: 8}, domain.Tile{Kind: domain.TileCache})
	snap := testSnapshot(g)
	view := View{Snap: snap}

	cache, ok := view.NearestCache(domain.GridPosition{X: 1, Y: 1})
	if !ok || cache != (domain.GridPosition{X: 2, Y: 2}) {
		t.Errorf("nearest cache = %v (%v), want (2, 2)", cache, ok)
	}

	exit, ok := view.NearestExit(domain.GridPosition{X: 1, Y: 1})
	if !ok || exit != (domain.GridPosition{X: 8, Y: 8}) {
		t.Errorf("nearest exit = %v (%v), want (8, 8)", exit, ok)
	}

	t.Run("no caches left", func(t *testing.T) {
		empty := testSnapshot(domain.NewGrid(5, 5))
		if _, ok := (View{Snap: empty}).NearestCache(domain.GridPosition{}); ok {
			t.Error("an empty grid has no nearest cache")
		}
	})
}
