package domain

// Verdict is the terminal-state classification of an expedition. Derived by
// the win/loss evaluator each tick, never stored beyond the tick result.
type Verdict string

const (
	VerdictActive  Verdict = "active"
	VerdictVictory Verdict = "victory"
	VerdictDefeat  Verdict = "defeat"
)

// SectorInfo is the static metadata of the sector the expedition runs in.
type SectorInfo struct {
	Name        string         `json:"name"`
	ExitPoints  []GridPosition `json:"exitPoints"`
	SpawnPoints []GridPosition `json:"spawnPoints"`
}

// Clone returns an independent copy of the sector metadata.
func (s SectorInfo) Clone() SectorInfo {
	return SectorInfo{
		Name:        s.Name,
		ExitPoints:  append([]GridPosition(nil), s.ExitPoints...),
		SpawnPoints: append([]GridPosition(nil), s.SpawnPoints...),
	}
}

// Snapshot is the unit of mutation of the simulation: one tick consumes a
// snapshot and produces a new one. Phases never alias into a snapshot they
// did not produce.
type Snapshot struct {
	Processes []Process      `json:"processes"`
	Malware   []Malware      `json:"malware"`
	Grid      *Grid          `json:"grid"`
	Log       *ExpeditionLog `json:"log"`
	Sector    SectorInfo     `json:"sector"`
	Tick      int            `json:"tick"`

	// Running counters, carried across ticks.
	DataCollected    int `json:"dataCollected"`
	MalwareDestroyed int `json:"malwareDestroyed"`
}

// Clone deep-copies the entity collections, log and sector metadata. The
// grid pointer is shared: tiles are only mutated by the collection phase,
// which swaps in its own Grid.Clone before writing, so the source snapshot's
// grid stays independent.
func (s *Snapshot) Clone() *Snapshot {
	cp := &Snapshot{
		Processes:        make([]Process, len(s.Processes)),
		Malware:          make([]Malware, len(s.Malware)),
		Grid:             s.Grid,
		Sector:           s.Sector.Clone(),
		Tick:             s.Tick,
		DataCollected:    s.DataCollected,
		MalwareDestroyed: s.MalwareDestroyed,
	}
	for i := range s.Processes {
		cp.Processes[i] = s.Processes[i].Clone()
	}
	for i := range s.Malware {
		cp.Malware[i] = s.Malware[i].Clone()
	}
	if s.Log != nil {
		cp.Log = s.Log.Clone()
	} else {
		cp.Log = &ExpeditionLog{}
	}
	return cp
}

// LiveProcessCount returns the number of non-destroyed processes.
func (s *Snapshot) LiveProcessCount() int {
	n := 0
	for i := range s.Processes {
		if s.Processes[i].Alive() {
			n++
		}
	}
	return n
}
