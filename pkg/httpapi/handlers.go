package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/redpill/charting/pkg/core"
)

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"result": s.svc.Ping()})
}

type readCSVRequest struct {
	FilePath string `json:"filePath"`
}

func (s *Server) handleReadCSV(w http.ResponseWriter, r *http.Request) {
	var req readCSVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.FilePath == "" {
		writeError(w, http.StatusBadRequest, "filePath is required")
		return
	}

	content, err := s.svc.ReadCSV(r.Context(), req.FilePath)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleSaveChart(w http.ResponseWriter, r *http.Request) {
	sourceID := mux.Vars(r)["sourceID"]

	// The blob is opaque: no JSON validation, byte-for-byte passthrough.
	state, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	if err := s.svc.SaveChartState(r.Context(), sourceID, string(state)); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoadChart(w http.ResponseWriter, r *http.Request) {
	sourceID := mux.Vars(r)["sourceID"]

	state, err := s.svc.LoadChartState(r.Context(), sourceID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(state))
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.svc.ListChartStates(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"sourceIds": ids})
}

func (s *Server) handleSaveNotes(w http.ResponseWriter, r *http.Request) {
	var notes []core.StickyNote
	if err := json.NewDecoder(r.Body).Decode(&notes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid notes payload: "+err.Error())
		return
	}

	if err := s.svc.SaveStickyNotes(r.Context(), notes); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoadNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.svc.LoadStickyNotes(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.State())
}

// statusFor maps the error taxonomy onto HTTP status codes. The front-end
// mostly cares about the error string, but 404 lets it distinguish "never
// saved" without parsing messages.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrFileRead), errors.Is(err, core.ErrDeserialization):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders a failure as {"error": "<message>"}; the message is the
// value the front-end surfaces to the user.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
