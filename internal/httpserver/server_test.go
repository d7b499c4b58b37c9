package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE runs (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    words_tested INTEGER NOT NULL,
    solved INTEGER NOT NULL,
    avg_attempts REAL NOT NULL
);
CREATE TABLE results (
    run_id TEXT NOT NULL REFERENCES runs(id),
    word TEXT NOT NULL,
    solved INTEGER NOT NULL,
    attempts INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    guess_log TEXT NOT NULL,
    UNIQUE (run_id, word)
);`

func newTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection gets its own :memory: database; pin to one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	ts := httptest.NewServer(New(db).Router())
	t.Cleanup(ts.Close)
	return ts, db
}

func seedRun(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO runs VALUES ('run1','2026-08-25T10:00:00Z','2026-08-25T10:05:00Z',2,1,3.0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO results VALUES
		('run1','crane',1,3,'solved','[{"guess":"stale","remaining":100}]'),
		('run1','mamma',0,12,'exhausted','[]')`)
	require.NoError(t, err)
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	var body map[string]bool
	resp := getJSON(t, ts.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body["ok"])
}

func TestRunsListAndFetch(t *testing.T) {
	ts, db := newTestServer(t)

	var runs []map[string]any
	resp := getJSON(t, ts.URL+"/runs", &runs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, runs)

	seedRun(t, db)
	getJSON(t, ts.URL+"/runs", &runs)
	require.Len(t, runs, 1)
	assert.Equal(t, "run1", runs[0]["id"])
	assert.Equal(t, float64(2), runs[0]["wordsTested"])

	var run map[string]any
	getJSON(t, ts.URL+"/runs/run1", &run)
	assert.Equal(t, float64(3), run["avgAttempts"])

	resp = getJSON(t, ts.URL+"/runs/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunResults(t *testing.T) {
	ts, db := newTestServer(t)
	seedRun(t, db)

	var results []map[string]any
	getJSON(t, ts.URL+"/runs/run1/results", &results)
	require.Len(t, results, 2)
	assert.Equal(t, "crane", results[0]["word"]) // ordered by word

	guessLog, ok := results[0]["guessLog"].([]any)
	require.True(t, ok)
	require.Len(t, guessLog, 1)

	// Filter to unsolved only.
	getJSON(t, ts.URL+"/runs/run1/results?solved=false", &results)
	require.Len(t, results, 1)
	assert.Equal(t, "mamma", results[0]["word"])

	resp := getJSON(t, ts.URL+"/runs/run1/results?solved=banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRunHardest(t *testing.T) {
	ts, db := newTestServer(t)
	seedRun(t, db)

	var results []map[string]any
	getJSON(t, ts.URL+"/runs/run1/hardest", &results)
	require.Len(t, results, 2)
	// Unsolved words come first.
	assert.Equal(t, "mamma", results[0]["word"])
}

func TestNotFoundIsJSON(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/bogus")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
