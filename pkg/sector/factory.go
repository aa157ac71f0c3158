package sector

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// Baseline stats for kinds missing from the catalog. Unknown kinds still
// produce a playable entity instead of an error mid-setup.
var (
	fallbackProcess = ProcessSpec{Health: 50, Attack: 5, Defense: 2, Speed: 1, ActionPoints: 2}
	fallbackMalware = MalwareSpec{Health: 30, Attack: 8, Defense: 1, Speed: 1, AggroRange: 5, Mobile: true}
)

// newID draws a v4 UUID from the injected rng. Same rng state, same id, so
// entity identity stays reproducible per seed.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		panic("sector: id generation failed: " + err.Error())
	}
	return id.String()
}

// CreateProcess builds a process of the given kind at pos, stats populated
// from the catalog. Default behavior rules depend on the kind.
func (c *Catalog) CreateProcess(kind string, pos domain.GridPosition, rng *rand.Rand) domain.Process {
	spec, ok := c.Processes[kind]
	if !ok {
		spec = fallbackProcess
	}

	id := newID(rng)
	return domain.Process{
		ID:     id,
		Name:   fmt.Sprintf("%s-%s", kind, id[:4]),
		Kind:   kind,
		Pos:    pos,
		Status: domain.StatusIdle,
		Stats: domain.Stats{
			Health:          spec.Health,
			MaxHealth:       spec.Health,
			Attack:          spec.Attack,
			Defense:         spec.Defense,
			Speed:           spec.Speed,
			ActionPoints:    spec.ActionPoints,
			MaxActionPoints: spec.ActionPoints,
		},
		Rules: defaultRules(kind),
	}
}

// CreateMalware builds a malware instance of the given kind at pos. Stealth
// kinds start dormant and concealed; everything else starts active.
func (c *Catalog) CreateMalware(kind string, pos domain.GridPosition, rng *rand.Rand) domain.Malware {
	spec, ok := c.Malware[kind]
	if !ok {
		spec = fallbackMalware
	}

	status := domain.StatusActive
	if spec.Stealth {
		status = domain.StatusDormant
	}

	return domain.Malware{
		ID:     newID(rng),
		Kind:   kind,
		Pos:    pos,
		Status: status,
		Stats: domain.Stats{
			Health:    spec.Health,
			MaxHealth: spec.Health,
			Attack:    spec.Attack,
			Defense:   spec.Defense,
			Speed:     spec.Speed,
		},
		AggroRange:      spec.AggroRange,
		AbilityCooldown: spec.AbilityCooldown,
		Cooldown:        spec.AbilityCooldown,
		Mobile:          spec.Mobile,
		Revealed:        !spec.Stealth,
	}
}

func defaultRules(kind string) []domain.BehaviorRule {
	switch kind {
	case domain.ProcessKindGuardian:
		// Guardians stand their ground when something hostile shows up.
		return []domain.BehaviorRule{
			{Name: "hold-against-enemy", Condition: domain.CondEnemyVisible, Target: domain.TargetHold},
		}
	case domain.ProcessKindScout, domain.ProcessKindHarvester:
		return []domain.BehaviorRule{
			{Name: "seek-cache", Condition: domain.CondIdle, Target: domain.TargetNearestCache},
		}
	default:
		return nil
	}
}
