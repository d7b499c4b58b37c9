// internal/httpserver/server.go
//
// HTTP wiring for the results API.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - Read-only endpoints over the results database:
//       GET /health
//       GET /runs
//       GET /runs/{runID}
//       GET /runs/{runID}/results   (?solved=false, ?limit=N)
//       GET /runs/{runID}/hardest
//
// The API is a local diagnostics surface for inspecting past batch runs;
// it owns no writes and no auth.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Kerpackie/WorldeSimulator/internal/solver"
)

// Server bundles the router and the results DB handle.
type Server struct {
	r  *chi.Mux
	db *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), db: db}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-simulator","endpoints":["/health","/runs","/runs/{runID}","/runs/{runID}/results","/runs/{runID}/hardest"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/runs", s.handleRuns)
	s.r.Get("/runs/{runID}", s.handleRun)
	s.r.Get("/runs/{runID}/results", s.handleResults)
	s.r.Get("/runs/{runID}/hardest", s.handleHardest)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- runs --------------------------------------

type runRow struct {
	ID          string  `json:"id"`
	StartedAt   string  `json:"startedAt"`
	FinishedAt  string  `json:"finishedAt"`
	WordsTested int     `json:"wordsTested"`
	Solved      int     `json:"solved"`
	AvgAttempts float64 `json:"avgAttempts"`
}

// handleRuns lists recent runs, newest first.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.Query(`SELECT id, started_at, finished_at, words_tested, solved, avg_attempts
	                         FROM runs ORDER BY started_at DESC LIMIT 50`)
	if err != nil {
		log.Error().Err(err).Msg("query runs")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	out := []runRow{}
	for rows.Next() {
		var rr runRow
		if err := rows.Scan(&rr.ID, &rr.StartedAt, &rr.FinishedAt, &rr.WordsTested, &rr.Solved, &rr.AvgAttempts); err == nil {
			out = append(out, rr)
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleRun returns one run's summary row.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")
	var rr runRow
	err := s.db.QueryRow(`SELECT id, started_at, finished_at, words_tested, solved, avg_attempts
	                      FROM runs WHERE id=?`, id).
		Scan(&rr.ID, &rr.StartedAt, &rr.FinishedAt, &rr.WordsTested, &rr.Solved, &rr.AvgAttempts)
	if err == sql.ErrNoRows {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("runId", id).Msg("query run")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rr)
}

type resultRow struct {
	Word     string                 `json:"word"`
	Solved   bool                   `json:"solved"`
	Attempts int                    `json:"attempts"`
	Outcome  string                 `json:"outcome"`
	GuessLog []solver.GuessLogEntry `json:"guessLog"`
}

// handleResults returns a run's per-word results.
// ?solved=true|false filters by outcome; ?limit=N caps the row count (default 200).
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")

	q := `SELECT word, solved, attempts, outcome, guess_log FROM results WHERE run_id=?`
	args := []any{id}
	if v := r.URL.Query().Get("solved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, `{"error":"bad_solved_param"}`, http.StatusBadRequest)
			return
		}
		q += ` AND solved=?`
		args = append(args, b)
	}
	limit := 200
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	q += ` ORDER BY word LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(q, args...)
	if err != nil {
		log.Error().Err(err).Str("runId", id).Msg("query results")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	out := []resultRow{}
	for rows.Next() {
		rr, err := scanResult(rows)
		if err != nil {
			continue
		}
		out = append(out, rr)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleHardest returns a run's unsolved words followed by the highest
// attempt counts, worst first.
func (s *Server) handleHardest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "runID")
	rows, err := s.db.Query(`SELECT word, solved, attempts, outcome, guess_log
	                         FROM results WHERE run_id=?
	                         ORDER BY solved ASC, attempts DESC, word ASC LIMIT 20`, id)
	if err != nil {
		log.Error().Err(err).Str("runId", id).Msg("query hardest")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	out := []resultRow{}
	for rows.Next() {
		rr, err := scanResult(rows)
		if err != nil {
			continue
		}
		out = append(out, rr)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// scanResult converts one results row, decoding the stored guess log JSON.
func scanResult(rows *sql.Rows) (resultRow, error) {
	var rr resultRow
	var guessLog string
	if err := rows.Scan(&rr.Word, &rr.Solved, &rr.Attempts, &rr.Outcome, &guessLog); err != nil {
		return rr, err
	}
	if err := json.Unmarshal([]byte(guessLog), &rr.GuessLog); err != nil {
		rr.GuessLog = []solver.GuessLogEntry{}
	}
	return rr, nil
}
