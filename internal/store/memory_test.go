package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kerpackie/WorldeSimulator/internal/solver"
)

func TestCollectorSaveGet(t *testing.T) {
	c := NewMemoryCollector()
	require.NoError(t, c.Save(solver.AttemptResult{Word: "crane", Solved: true, Attempts: 3}))

	r, err := c.Get("crane")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Attempts)

	_, err = c.Get("stale")
	assert.Error(t, err)
}

func TestCollectorDrainOrder(t *testing.T) {
	c := NewMemoryCollector()
	for _, w := range []string{"stale", "crane", "apple"} {
		require.NoError(t, c.Save(solver.AttemptResult{Word: w}))
	}

	got := c.Drain([]string{"apple", "missing", "crane", "stale"})
	words := make([]string, len(got))
	for i, r := range got {
		words[i] = r.Word
	}
	assert.Equal(t, []string{"apple", "crane", "stale"}, words)
}

func TestCollectorConcurrentSaves(t *testing.T) {
	c := NewMemoryCollector()
	words := []string{"apple", "angle", "table", "stale", "crane"}

	var wg sync.WaitGroup
	for _, w := range words {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			_ = c.Save(solver.AttemptResult{Word: w, Solved: true})
		}(w)
	}
	wg.Wait()

	assert.Len(t, c.Drain(words), len(words))
}
