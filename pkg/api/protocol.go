package api

import (
	"encoding/json"
)

// --- SERVER -> CLIENT ---

// ServerResponse is the root object the server pushes to clients: a full
// view of one expedition after a tick (or on demand). Unrevealed malware is
// filtered out before the view is built; clients never see concealed
// entities.
type ServerResponse struct {
	// Type is "STARTED", "UPDATE" or "ERROR".
	Type string `json:"type"`

	// ExpeditionID identifies which expedition this view belongs to.
	// Spectators watching another run drop mismatching frames.
	ExpeditionID string `json:"expeditionId,omitempty"`

	// Tick is the simulation time of this view.
	Tick int `json:"tick"`

	// Verdict is "active", "victory" or "defeat".
	Verdict string `json:"verdict,omitempty"`

	Grid      *GridMeta     `json:"grid,omitempty"`
	Map       []TileView    `json:"map,omitempty"`
	Processes []ProcessView `json:"processes,omitempty"`
	Malware   []MalwareView `json:"malware,omitempty"`
	Logs      []LogView     `json:"logs,omitempty"`

	DataCollected    int `json:"dataCollected"`
	MalwareDestroyed int `json:"malwareDestroyed"`

	// Error carries the failure message on Type "ERROR".
	Error string `json:"error,omitempty"`
}

// GridMeta tells the client which grid size to prepare.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView is the DTO for one grid tile.
type TileView struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Kind       string `json:"kind"`
	Corruption int    `json:"corruption,omitempty"`
	Walkable   bool   `json:"walkable"`
}

// StatsView is the DTO for an entity stat block.
type StatsView struct {
	Health          int `json:"health"`
	MaxHealth       int `json:"maxHealth"`
	Attack          int `json:"attack,omitempty"`
	Defense         int `json:"defense,omitempty"`
	ActionPoints    int `json:"actionPoints,omitempty"`
	MaxActionPoints int `json:"maxActionPoints,omitempty"`
}

// ProcessView is the DTO for a friendly process.
type ProcessView struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
	Pos    Position  `json:"pos"`
	Stats  StatsView `json:"stats"`

	// PathLeft is how many cells remain on the stored path, so the client
	// can render the route without receiving every waypoint.
	PathLeft int `json:"pathLeft,omitempty"`
}

// MalwareView is the DTO for a revealed hostile.
type MalwareView struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
	Pos    Position  `json:"pos"`
	Stats  StatsView `json:"stats"`
}

// Position mirrors a grid coordinate on the wire.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LogView is one line of the rolling expedition log.
type LogView struct {
	Tick int    `json:"tick"`
	Type string `json:"type"` // INFO, COMBAT, SYSTEM
	Text string `json:"text"`
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object for all client messages.
type ClientCommand struct {
	// Action is one of START, ATTACH, STEP, PATH, STATE.
	Action string `json:"action"`

	// Payload structure depends on Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// StartPayload begins a new expedition. Seed 0 lets the server derive one.
type StartPayload struct {
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"` // easy, normal, hard
}

// AttachPayload binds the client to an existing expedition as a spectator.
type AttachPayload struct {
	ExpeditionID string `json:"expeditionId"`
}

// StepPayload advances the bound expedition by Count ticks (default 1).
type StepPayload struct {
	Count int `json:"count,omitempty"`
}

// PathPayload routes a process to a destination cell.
type PathPayload struct {
	ProcessID string `json:"processId"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}
