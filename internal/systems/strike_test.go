package systems

import (
	"math/rand"
	"testing"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

func TestResolveProcessStrikesFirstAdjacent(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	p := testProcess("p1", domain.GridPosition{X: 5, Y: 5})
	snap.Processes = []domain.Process{p}
	// Two adjacent targets; the first in collection order takes the hit.
	first := testMalware("m1", domain.MalwareKindVirus, domain.GridPosition{X: 5, Y: 4})
	second := testMalware("m2", domain.MalwareKindVirus, domain.GridPosition{X: 6, Y: 5})
	first.Revealed = false
	snap.Malware = []domain.Malware{first, second}

	ResolveProcessStrikes(snap, rand.New(rand.NewSource(1)))

	if snap.Malware[0].Stats.Health == first.Stats.Health {
		t.Error("first adjacent malware should have taken damage")
	}
	if snap.Malware[1].Stats.Health != second.Stats.Health {
		t.Error("second malware should be untouched")
	}
	if !snap.Malware[0].Revealed {
		t.Error("a struck malware is revealed")
	}
	if snap.Processes[0].Status != domain.StatusAttacking {
		t.Errorf("attacker status = %s, want attacking", snap.Processes[0].Status)
	}
	if snap.Log.Len() != 1 {
		t.Errorf("log entries = %d, want 1", snap.Log.Len())
	}
}

func TestResolveProcessStrikesLethal(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	snap.Processes = []domain.Process{testProcess("p1", domain.GridPosition{X: 5, Y: 5})}
	m := testMalware("m1", domain.MalwareKindVirus, domain.GridPosition{X: 5, Y: 6})
	m.Stats.Health = 1
	snap.Malware = []domain.Malware{m}

	ResolveProcessStrikes(snap, rand.New(rand.NewSource(1)))

	if snap.Malware[0].Status != domain.StatusDestroyed {
		t.Errorf("malware status = %s, want destroyed", snap.Malware[0].Status)
	}
	if snap.MalwareDestroyed != 1 {
		t.Errorf("destroyed counter = %d, want 1", snap.MalwareDestroyed)
	}
}

func TestResolveProcessStrikesSkipsNonAdjacent(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	snap.Processes = []domain.Process{testProcess("p1", domain.GridPosition{X: 1, Y: 1})}
	// Diagonal is not orthogonal adjacency.
	snap.Malware = []domain.Malware{testMalware("m1", domain.MalwareKindVirus, domain.GridPosition{X: 2, Y: 2})}

	ResolveProcessStrikes(snap, rand.New(rand.NewSource(1)))

	if snap.Malware[0].Stats.Health != 30 {
		t.Error("diagonal malware should not be struck")
	}
	if snap.Processes[0].Status != domain.StatusIdle {
		t.Errorf("process status = %s, want untouched idle", snap.Processes[0].Status)
	}
}

func TestResolveProcessStrikesSkipsDestroyedTargets(t *testing.T) {
	snap := testSnapshot(domain.NewGrid(10, 10))
	snap.Processes = []domain.Process{testProcess("p1", domain.GridPosition{X: 5, Y: 5})}
	dead := testMalware("dead", domain.MalwareKindVirus, domain.GridPosition{X: 5, Y: 4})
	dead.Status = domain.StatusDestroyed
	live := testMalware("live", domain.MalwareKindVirus, domain.GridPosition{X: 5, Y: 6})
	snap.Malware = []domain.Malware{dead, live}

	ResolveProcessStrikes(snap, rand.New(rand.NewSource(1)))

	if snap.Malware[1].Stats.Health == live.Stats.Health {
		t.Error("the live malware should have been struck instead of the destroyed one")
	}
	if snap.Malware[0].Stats.Health != dead.Stats.Health {
		t.Error("the destroyed malware must not be struck again")
	}
}
