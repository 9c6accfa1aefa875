package server

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ukfiscal/lifetax/internal/domain"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type reformInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReforms lists the reform catalogue so clients can build toggles
// without hardcoding keys.
func (s *Server) handleReforms(w http.ResponseWriter, r *http.Request) {
	reforms := domain.AllReforms()
	out := make([]reformInfo, 0, len(reforms))
	for _, rf := range reforms {
		out = append(out, reformInfo{
			Key:         string(rf.Key),
			Name:        rf.Name,
			Description: rf.Description,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleRules exposes the engine's active fiscal rule set.
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Rules)
}

// handleSimulate runs one lifetime simulation. Validation failures come
// back as 400 with the engine's message; anything else is a 500.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.engine.Run(&req)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: GetRequestID(r.Context()),
	})
}
