package domain

// Search limits.
const (
	// DefaultMaxPathIterations bounds A* node expansions. Exceeding the
	// budget collapses to "no path"; callers may retry with a larger one.
	DefaultMaxPathIterations = 5000
)

// Malware kinds known to the core. The catalog may define more; only the
// worm has hardcoded semantics (self-replication).
const (
	MalwareKindVirus     = "virus"
	MalwareKindWorm      = "worm"
	MalwareKindTrojan    = "trojan"
	MalwareKindLogicBomb = "logicbomb"
)

// Process kinds shipped with the default catalog.
const (
	ProcessKindScout     = "scout"
	ProcessKindGuardian  = "guardian"
	ProcessKindHarvester = "harvester"
)

// DefaultReplicationCooldown is the parent cooldown reset used when the kind
// catalog leaves the ability cooldown unset.
const DefaultReplicationCooldown = 3

// Difficulty scales the replication population cap.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// DefaultReplicationCaps is the built-in difficulty table; the sector
// catalog may override it.
var DefaultReplicationCaps = map[Difficulty]int{
	DifficultyEasy:   8,
	DifficultyNormal: 12,
	DifficultyHard:   16,
}

// ReplicationCap resolves the population cap for a difficulty, preferring
// the supplied override table.
func ReplicationCap(d Difficulty, overrides map[Difficulty]int) int {
	if overrides != nil {
		if cap, ok := overrides[d]; ok {
			return cap
		}
	}
	if cap, ok := DefaultReplicationCaps[d]; ok {
		return cap
	}
	return DefaultReplicationCaps[DifficultyNormal]
}
