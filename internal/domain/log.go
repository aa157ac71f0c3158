package domain

// LogCapacity bounds the expedition log: when full, the oldest entry is
// evicted first (FIFO).
const LogCapacity = 50

// Log entry categories, mirroring what clients color-code.
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogSystem = "SYSTEM"
)

// LogEntry is one line of the rolling expedition log. Entries carry the tick
// they were produced on instead of wall-clock time so that identical runs
// produce identical logs.
type LogEntry struct {
	Tick int    `json:"tick"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// ExpeditionLog is the bounded rolling log threaded through the tick phases.
// It is part of the snapshot, not an ambient buffer.
type ExpeditionLog struct {
	Entries []LogEntry `json:"entries"`
}

// Append adds an entry, evicting the oldest line once the cap is reached.
func (l *ExpeditionLog) Append(tick int, logType, text string) {
	l.Entries = append(l.Entries, LogEntry{Tick: tick, Type: logType, Text: text})
	if len(l.Entries) > LogCapacity {
		l.Entries = append([]LogEntry(nil), l.Entries[len(l.Entries)-LogCapacity:]...)
	}
}

// Len returns the number of retained entries.
func (l *ExpeditionLog) Len() int {
	return len(l.Entries)
}

// Clone returns an independent copy of the log.
func (l *ExpeditionLog) Clone() *ExpeditionLog {
	return &ExpeditionLog{Entries: append([]LogEntry(nil), l.Entries...)}
}
