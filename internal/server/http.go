package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/JSchwerberg/the-substrate-sub001/internal/engine"
	"github.com/JSchwerberg/the-substrate-sub001/internal/network"
	"github.com/JSchwerberg/the-substrate-sub001/internal/version"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

type Server struct {
	Service *engine.Service
	Hub     *network.Broadcaster
	Port    string
}

func New(service *engine.Service, port string) *Server {
	return &Server{
		Service: service,
		Hub:     network.NewBroadcaster(),
		Port:    port,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Service)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("Substrate server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS upgrades the connection and starts the client pumps.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
