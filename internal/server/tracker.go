package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kidquest-tracker/internal/domain"
	"kidquest-tracker/internal/repository"
	"kidquest-tracker/internal/service"

	"github.com/rs/zerolog"
)

// TrackerServer is the JSON surface the mobile client talks to.
type TrackerServer struct {
	progress *service.ProgressService
	content  *service.ContentService
	profile  *repository.ProfileStore
	logger   zerolog.Logger
}

func NewTrackerServer(
	progress *service.ProgressService,
	content *service.ContentService,
	profile *repository.ProfileStore,
	logger zerolog.Logger,
) *TrackerServer {
	return &TrackerServer{
		progress: progress,
		content:  content,
		profile:  profile,
		logger:   logger,
	}
}

func (s *TrackerServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/results", s.recordResult)
	mux.HandleFunc("GET /v1/results/recent", s.recentResults)
	mux.HandleFunc("DELETE /v1/results", s.clearResults)
	mux.HandleFunc("GET /v1/stats", s.getStats)
	mux.HandleFunc("GET /v1/packs/{subject}", s.getPack)
	mux.HandleFunc("GET /v1/profile/name", s.getDisplayName)
	mux.HandleFunc("PUT /v1/profile/name", s.setDisplayName)
}

func (s *TrackerServer) recordResult(w http.ResponseWriter, r *http.Request) {
	var result domain.GameResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.progress.RecordResult(r.Context(), result); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The write is best-effort and asynchronous; accepted is all we can say.
	w.WriteHeader(http.StatusAccepted)
}

func (s *TrackerServer) recentResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	results := s.progress.GetRecentGames(r.Context(), limit)
	if results == nil {
		results = []domain.GameResult{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

func (s *TrackerServer) clearResults(w http.ResponseWriter, r *http.Request) {
	if err := s.progress.ClearAllData(r.Context()); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to clear data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *TrackerServer) getStats(w http.ResponseWriter, r *http.Request) {
	snapshot := s.progress.GetStats(r.Context())
	if snapshot.Achievements == nil {
		snapshot.Achievements = []string{}
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *TrackerServer) getPack(w http.ResponseWriter, r *http.Request) {
	subject := domain.Subject(r.PathValue("subject"))
	pack, err := s.content.Pack(r.Context(), subject)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, pack)
}

func (s *TrackerServer) getDisplayName(w http.ResponseWriter, r *http.Request) {
	name := s.profile.DisplayName(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *TrackerServer) setDisplayName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.profile.SetDisplayName(r.Context(), body.Name); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to store name")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *TrackerServer) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
