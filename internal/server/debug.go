package server

import (
	"encoding/json"
	"net/http"

	"github.com/JSchwerberg/the-substrate-sub001/internal/engine"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// DebugHandler exposes internal engine state for inspection.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes registers the debug endpoints.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/expeditions", h.handleListExpeditions)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
}

// /debug/expeditions - all running expeditions with headline numbers.
func (h *DebugHandler) handleListExpeditions(w http.ResponseWriter, r *http.Request) {
	type ExpeditionSummary struct {
		ID               string `json:"id"`
		Seed             int64  `json:"seed"`
		Tick             int    `json:"tick"`
		Verdict          string `json:"verdict"`
		LiveProcesses    int    `json:"live_processes"`
		MalwareCount     int    `json:"malware_count"`
		DataCollected    int    `json:"data_collected"`
		MalwareDestroyed int    `json:"malware_destroyed"`
	}

	// Initialize as an empty slice, not nil, so JSON comes out as "[]".
	summary := make([]ExpeditionSummary, 0)
	for _, exp := range h.Service.Expeditions() {
		summary = append(summary, ExpeditionSummary{
			ID:               exp.ID,
			Seed:             exp.Seed,
			Tick:             exp.Snapshot.Tick,
			Verdict:          string(exp.Verdict),
			LiveProcesses:    exp.Snapshot.LiveProcessCount(),
			MalwareCount:     len(exp.Snapshot.Malware),
			DataCollected:    exp.Snapshot.DataCollected,
			MalwareDestroyed: exp.Snapshot.MalwareDestroyed,
		})
	}

	writeJSON(w, summary)
}

// /debug/entities?expedition=<id> - raw entity dump including concealed
// malware (the regular view filters those out).
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("expedition")
	exp, ok := h.Service.Get(id)
	if !ok {
		http.Error(w, "expedition not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]interface{}{
		"processes": exp.Snapshot.Processes,
		"malware":   exp.Snapshot.Malware,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
