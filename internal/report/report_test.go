package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kerpackie/WorldeSimulator/internal/solver"
)

var sampleResults = []solver.AttemptResult{
	{
		Word: "crane", Solved: true, Outcome: solver.OutcomeSolved, Attempts: 3,
		GuessLog: []solver.GuessLogEntry{
			{Guess: "stale", Remaining: 100},
			{Guess: "crony", Remaining: 12},
			{Guess: "crane", Remaining: 2},
		},
	},
	{
		Word: "mamma", Solved: false, Outcome: solver.OutcomeExhausted, Attempts: 12,
		GuessLog: []solver.GuessLogEntry{{Guess: "stale", Remaining: 100}},
	},
	{Word: "stale", Solved: true, Outcome: solver.OutcomeSolved, Attempts: 1,
		GuessLog: []solver.GuessLogEntry{{Guess: "stale", Remaining: 100}}},
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, sampleResults))

	want := "word,attempts,solved\n" +
		"crane,3,true\n" +
		"mamma,12,false\n" +
		"stale,1,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDetailJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailJSON(&buf, sampleResults))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "crane", decoded[0]["word"])
	assert.Equal(t, true, decoded[0]["solved"])

	guessLog, ok := decoded[0]["guessLog"].([]any)
	require.True(t, ok)
	first, ok := guessLog[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "stale", first["guess"])
	assert.Equal(t, float64(100), first["remaining"])
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults)

	assert.Equal(t, 3, s.Tested)
	assert.Equal(t, 2, s.SolvedCount)
	assert.Equal(t, []string{"mamma"}, s.Failed)
	assert.InDelta(t, 2.0, s.AvgAttempts, 1e-9) // (3+1)/2
	assert.Equal(t, 1, s.MinAttempts)
	assert.Equal(t, 3, s.MaxAttempts)
	assert.Equal(t, map[int]int{1: 1, 3: 1}, s.Distribution)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Tested)
	assert.Zero(t, s.SolvedCount)
	assert.Zero(t, s.AvgAttempts)
	assert.Empty(t, s.Failed)
}

func TestSaveFiles(t *testing.T) {
	prefix := t.TempDir() + "/run"
	require.NoError(t, SaveFiles(prefix, sampleResults))
	assert.FileExists(t, prefix+"_summary.csv")
	assert.FileExists(t, prefix+"_details.json")
}
