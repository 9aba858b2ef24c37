package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	sim "github.com/procsim/procsim/sim"
)

// createSessionRequest configures a new engine instance. Processes use the
// same spec shape the CSV/YAML loaders produce.
type createSessionRequest struct {
	Algorithm      string           `json:"algorithm"`
	Quantum        int              `json:"quantum"`
	Aging          bool             `json:"aging"`
	AgingThreshold int              `json:"aging_threshold"`
	Processes      []processRequest `json:"processes"`
}

type processRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority int    `json:"priority"`
}

type sessionResponse struct {
	SessionID string       `json:"session_id"`
	Finished  bool         `json:"finished"`
	State     sim.Snapshot `json:"state"`
}

type tickResponse struct {
	SessionID string       `json:"session_id"`
	Trace     []string     `json:"trace"`
	Finished  bool         `json:"finished"`
	Capped    bool         `json:"capped,omitempty"`
	State     sim.Snapshot `json:"state"`
}

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Sessions  int    `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	n := len(s.sessions)
	s.mu.RUnlock()
	respondJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Sessions:  n,
	})
}

func (s *Server) handleListAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"algorithms": sim.AlgorithmNames()})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Processes) == 0 {
		respondError(w, http.StatusBadRequest, "at least one process is required")
		return
	}
	for _, p := range req.Processes {
		if p.Burst < 1 {
			respondError(w, http.StatusBadRequest, "burst must be >= 1")
			return
		}
		if p.Arrival < 0 {
			respondError(w, http.StatusBadRequest, "arrival must be >= 0")
			return
		}
	}

	engine := sim.NewScheduler()
	engine.SetAlgorithm(req.Algorithm)
	if req.Quantum != 0 {
		engine.SetTimeQuantum(req.Quantum)
	}
	engine.SetAging(req.Aging)
	if req.AgingThreshold != 0 {
		engine.SetAgingThreshold(req.AgingThreshold)
	}
	for _, p := range req.Processes {
		engine.AddProcess(p.ID, p.Name, p.Arrival, p.Burst, p.Priority)
	}

	id := newSessionID()
	s.mu.Lock()
	s.sessions[id] = &session{engine: engine}
	s.mu.Unlock()

	respondJSON(w, http.StatusCreated, sessionResponse{
		SessionID: id,
		Finished:  engine.IsFinished(),
		State:     engine.Snapshot(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ses := s.lookup(id)
	if ses == nil {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	ses.mu.Lock()
	resp := sessionResponse{SessionID: id, Finished: ses.engine.IsFinished(), State: ses.engine.Snapshot()}
	ses.mu.Unlock()
	respondJSON(w, http.StatusOK, resp)
}

// handleTick advances a session by one tick, or ?n= ticks bounded by the
// configured cap, and returns the trace lines plus the new snapshot.
func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ses := s.lookup(id)
	if ses == nil {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	if n > s.config.TickCap {
		n = s.config.TickCap
	}

	ses.mu.Lock()
	defer ses.mu.Unlock()

	lines := make([]string, 0, n)
	for i := 0; i < n && !ses.engine.IsFinished(); i++ {
		lines = append(lines, ses.engine.Tick())
	}
	respondJSON(w, http.StatusOK, tickResponse{
		SessionID: id,
		Trace:     lines,
		Finished:  ses.engine.IsFinished(),
		State:     ses.engine.Snapshot(),
	})
}

// handleRun drives a session to completion under the tick cap. Hitting the
// cap is reported to the caller, not treated as a server error.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ses := s.lookup(id)
	if ses == nil {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	ses.mu.Lock()
	defer ses.mu.Unlock()

	lines := make([]string, 0)
	for i := 0; i < s.config.TickCap && !ses.engine.IsFinished(); i++ {
		lines = append(lines, ses.engine.Tick())
	}
	respondJSON(w, http.StatusOK, tickResponse{
		SessionID: id,
		Trace:     lines,
		Finished:  ses.engine.IsFinished(),
		Capped:    !ses.engine.IsFinished(),
		State:     ses.engine.Snapshot(),
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
