package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kidquest-tracker/internal/api"
	"kidquest-tracker/internal/config"
	"kidquest-tracker/internal/domain"
	"kidquest-tracker/internal/repository"
	"kidquest-tracker/internal/service"
	"kidquest-tracker/internal/storage"

	"github.com/rs/zerolog"
)

func newTestServer() (*http.ServeMux, *repository.ResultStore) {
	log := zerolog.Nop()
	kv := storage.NewMemory()
	results := repository.NewResultStore(kv, log)
	profile := repository.NewProfileStore(kv, log)
	progress := service.NewProgressService(results, log)
	content := service.NewContentService(api.NewContentClient(&config.Config{}), log)

	mux := http.NewServeMux()
	NewTrackerServer(progress, content, profile, log).Register(mux)
	return mux, results
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRecordResultEndpoint(t *testing.T) {
	mux, results := newTestServer()

	body := `{"gameId":"math_quiz","subject":"math","score":20,"totalQuestions":3,"correctAnswers":2}`
	rec := doRequest(t, mux, http.MethodPost, "/v1/results", body)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}

	// The write is asynchronous; poll until it lands.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(results.All(t.Context())) == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("result never recorded")
}

func TestRecordResultRejectsInvalidBody(t *testing.T) {
	mux, _ := newTestServer()

	if rec := doRequest(t, mux, http.MethodPost, "/v1/results", "{"); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec.Code)
	}

	body := `{"gameId":"math_quiz","subject":"history","score":20,"totalQuestions":3,"correctAnswers":2}`
	if rec := doRequest(t, mux, http.MethodPost, "/v1/results", body); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid subject: status = %d, want 400", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	mux, results := newTestServer()

	r := domain.GameResult{
		GameID:         "math_quiz",
		Subject:        domain.SubjectMath,
		Score:          30,
		TotalQuestions: 3,
		CorrectAnswers: 3,
		Timestamp:      time.Now().UnixMilli(),
	}
	if err := results.Append(t.Context(), r); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rec := doRequest(t, mux, http.MethodGet, "/v1/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got domain.GameStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalGamesPlayed != 1 || got.PerfectScores != 1 {
		t.Errorf("games/perfect = %d/%d, want 1/1", got.TotalGamesPlayed, got.PerfectScores)
	}
	if len(got.Achievements) == 0 {
		t.Error("expected first_game achievement")
	}
}

func TestRecentEndpointValidatesLimit(t *testing.T) {
	mux, _ := newTestServer()

	if rec := doRequest(t, mux, http.MethodGet, "/v1/results/recent?limit=abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec := doRequest(t, mux, http.MethodGet, "/v1/results/recent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []domain.GameResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestClearEndpoint(t *testing.T) {
	mux, results := newTestServer()

	if err := results.Append(t.Context(), domain.GameResult{GameID: "g", Subject: domain.SubjectMath, TotalQuestions: 1, CorrectAnswers: 1}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if rec := doRequest(t, mux, http.MethodDelete, "/v1/results", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := results.All(t.Context()); len(got) != 0 {
		t.Errorf("history len = %d after clear, want 0", len(got))
	}
}

func TestPackEndpoint(t *testing.T) {
	mux, _ := newTestServer()

	rec := doRequest(t, mux, http.MethodGet, "/v1/packs/math", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var pack domain.Pack
	if err := json.Unmarshal(rec.Body.Bytes(), &pack); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if pack.Subject != domain.SubjectMath || len(pack.Questions) == 0 {
		t.Errorf("unexpected pack: %+v", pack)
	}

	if rec := doRequest(t, mux, http.MethodGet, "/v1/packs/history", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown subject: status = %d, want 404", rec.Code)
	}
}

func TestProfileNameRoundTrip(t *testing.T) {
	mux, _ := newTestServer()

	if rec := doRequest(t, mux, http.MethodPut, "/v1/profile/name", `{"name":"  Maya "}`); rec.Code != http.StatusNoContent {
		t.Fatalf("PUT status = %d, want 204", rec.Code)
	}

	rec := doRequest(t, mux, http.MethodGet, "/v1/profile/name", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["name"] != "Maya" {
		t.Errorf("name = %q, want trimmed %q", got["name"], "Maya")
	}
}
