package domain

// Status is the per-entity state machine tag. The set is closed; phases only
// perform the transitions listed in the tick contract.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusMoving    Status = "moving"
	StatusAttacking Status = "attacking"
	StatusAlerted   Status = "alerted"
	StatusActive    Status = "active"
	StatusDormant   Status = "dormant"
	StatusDestroyed Status = "destroyed"
)

// Stats is the shared stat block for processes and malware.
type Stats struct {
	Health          int `json:"health"`
	MaxHealth       int `json:"maxHealth"`
	Attack          int `json:"attack"`
	Defense         int `json:"defense"`
	Speed           int `json:"speed"`
	ActionPoints    int `json:"actionPoints"`
	MaxActionPoints int `json:"maxActionPoints"`
}

// TakeDamage applies damage and reports whether the entity was destroyed by
// this hit. Health never goes below zero.
func (s *Stats) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = 0
		return true
	}
	return false
}

// Process is a player-controlled mobile entity.
type Process struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Pos    GridPosition   `json:"pos"`
	Status Status         `json:"status"`
	Stats  Stats          `json:"stats"`
	Effects []StatusEffect `json:"effects,omitempty"`

	// Path is the precomputed route the movement phase walks one cell per
	// tick. PathIndex points at the cell the process currently occupies.
	Path      []GridPosition `json:"path,omitempty"`
	PathIndex int            `json:"pathIndex,omitempty"`

	// Rules drive the behavior phase; the matcher only ever assigns a new
	// Path through them, never stats or status.
	Rules []BehaviorRule `json:"rules,omitempty"`
}

// Alive reports whether the process is still in play.
func (p *Process) Alive() bool {
	return p.Status != StatusDestroyed
}

// Clone returns a deep copy, detaching path, effects and rules.
func (p Process) Clone() Process {
	cp := p
	cp.Path = append([]GridPosition(nil), p.Path...)
	cp.Effects = append([]StatusEffect(nil), p.Effects...)
	cp.Rules = append([]BehaviorRule(nil), p.Rules...)
	return cp
}

// Malware is a hostile mobile entity, possibly starting concealed.
type Malware struct {
	ID     string         `json:"id"`
	Kind   string         `json:"kind"`
	Pos    GridPosition   `json:"pos"`
	Status Status         `json:"status"`
	Stats  Stats          `json:"stats"`
	Effects []StatusEffect `json:"effects,omitempty"`

	// Behavior descriptor, populated by the factory from the kind catalog.
	AggroRange      int  `json:"aggroRange"`
	AbilityCooldown int  `json:"abilityCooldown"` // configured reset value
	Cooldown        int  `json:"cooldown"`        // ticks until ability ready
	Mobile          bool `json:"mobile"`

	// Revealed marks the malware as detected: set when attacked or when it
	// activates on its own. Unrevealed malware is hidden from clients.
	Revealed bool `json:"revealed"`
}

// Alive reports whether the malware is still in play.
func (m *Malware) Alive() bool {
	return m.Status != StatusDestroyed
}

// Replicates reports whether this kind self-replicates.
func (m *Malware) Replicates() bool {
	return m.Kind == MalwareKindWorm
}

// Clone returns a deep copy, detaching the effects slice.
func (m Malware) Clone() Malware {
	cp := m
	cp.Effects = append([]StatusEffect(nil), m.Effects...)
	return cp
}

// LiveProcessAt returns the index of a non-destroyed process standing on pos,
// or -1. Collection order decides when several could match (they cannot: the
// movement phase never stacks live processes).
func LiveProcessAt(processes []Process, pos GridPosition) int {
	for i := range processes {
		if processes[i].Alive() && processes[i].Pos == pos {
			return i
		}
	}
	return -1
}

// LiveMalwareAt returns the index of a non-destroyed malware on pos, or -1.
func LiveMalwareAt(malware []Malware, pos GridPosition) int {
	for i := range malware {
		if malware[i].Alive() && malware[i].Pos == pos {
			return i
		}
	}
	return -1
}
