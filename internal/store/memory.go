// internal/store/memory.go
//
// In-memory collector for attempt results produced by concurrent batch
// workers. Concurrency-safe via RWMutex; drained once per run, in a
// caller-supplied word order, so reports come out in corpus order no matter
// how the workers finished.

package store

import (
	"errors"
	"sync"

	"github.com/Kerpackie/WorldeSimulator/internal/solver"
)

// Collector is the sink batch workers write attempt results into.
type Collector interface {
	// Save records the result for its target word, overwriting any previous
	// record for the same word.
	Save(r solver.AttemptResult) error

	// Get retrieves one result by target word.
	// Returns an error if no result was recorded.
	Get(word string) (solver.AttemptResult, error)

	// Drain returns the recorded results ordered by the given word list,
	// skipping words with no recorded result.
	Drain(order []string) []solver.AttemptResult
}

// memory is a map-based Collector implementation.
type memory struct {
	mu      sync.RWMutex
	results map[string]solver.AttemptResult // keyed by target word
}

// NewMemoryCollector constructs an empty in-memory Collector.
func NewMemoryCollector() Collector {
	return &memory{results: make(map[string]solver.AttemptResult)}
}

func (m *memory) Save(r solver.AttemptResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.Word] = r
	return nil
}

func (m *memory) Get(word string) (solver.AttemptResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[word]; ok {
		return r, nil
	}
	return solver.AttemptResult{}, errors.New("not found")
}

func (m *memory) Drain(order []string) []solver.AttemptResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]solver.AttemptResult, 0, len(m.results))
	for _, w := range order {
		if r, ok := m.results[w]; ok {
			out = append(out, r)
		}
	}
	return out
}
