package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(m map[string]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}

func TestBuildTablesNormalize(t *testing.T) {
	tables := Build([]string{"crane", "stale", "slate"})

	assert.InDelta(t, 1.0, sum(tables.Letters), 1e-9)
	assert.InDelta(t, 1.0, sum(tables.Bigrams), 1e-9)
	assert.InDelta(t, 1.0, sum(tables.Trigrams), 1e-9)
	for i := range tables.Positions {
		assert.InDelta(t, 1.0, sum(tables.Positions[i]), 1e-9, "position %d", i)
	}
}

func TestBuildLetterCountsAllOccurrences(t *testing.T) {
	// "aabbc": a and b twice each, c once, out of 5 occurrences.
	tables := Build([]string{"aabbc"})
	assert.InDelta(t, 0.4, tables.Letters["a"], 1e-9)
	assert.InDelta(t, 0.4, tables.Letters["b"], 1e-9)
	assert.InDelta(t, 0.2, tables.Letters["c"], 1e-9)
}

func TestBuildBigrams(t *testing.T) {
	// "aabbc" windows: aa, ab, bb, bc.
	tables := Build([]string{"aabbc"})
	assert.Len(t, tables.Bigrams, 4)
	assert.InDelta(t, 0.25, tables.Bigrams["aa"], 1e-9)
	assert.Zero(t, tables.Bigrams["ca"])
}

func TestBuildPositions(t *testing.T) {
	tables := Build([]string{"crane", "cloud"})
	assert.InDelta(t, 1.0, tables.Positions[0]["c"], 1e-9)
	assert.InDelta(t, 0.5, tables.Positions[1]["r"], 1e-9)
	assert.Zero(t, tables.Positions[4]["c"])
}

func TestBuildEmptyCorpus(t *testing.T) {
	tables := Build(nil)
	assert.Empty(t, tables.Letters)
	assert.Empty(t, tables.Bigrams)
	assert.Empty(t, tables.Trigrams)
	for i := range tables.Positions {
		assert.Empty(t, tables.Positions[i])
	}
}
