// internal/stats/stats.go
//
// Corpus frequency statistics for the scoring heuristic.
// Responsibilities:
//   - Count letter, bigram, trigram and per-position letter occurrences
//     across the whole corpus.
//   - Normalize each table so its values sum to 1 over observed keys.
//
// Tables are built once and never mutated afterward; they are safe to share
// across concurrent simulations. Callers treat unseen keys as probability 0.

package stats

// WordLen is the fixed word length the simulator operates on.
const WordLen = 5

// Tables holds the four normalized frequency tables built from a corpus.
type Tables struct {
	Letters   map[string]float64          // single letters, over all occurrences
	Bigrams   map[string]float64          // contiguous 2-grams
	Trigrams  map[string]float64          // contiguous 3-grams
	Positions [WordLen]map[string]float64 // letter frequency per position
}

// Build computes all four tables from the corpus.
// An empty corpus yields empty (non-nil) tables; every lookup then misses
// and the scorer degrades to 0 for every word.
func Build(corpus []string) Tables {
	t := Tables{
		Letters:  make(map[string]float64),
		Bigrams:  make(map[string]float64),
		Trigrams: make(map[string]float64),
	}
	for i := range t.Positions {
		t.Positions[i] = make(map[string]float64)
	}

	for _, w := range corpus {
		for i := 0; i < len(w); i++ {
			t.Letters[w[i:i+1]]++
			if i < len(t.Positions) {
				t.Positions[i][w[i:i+1]]++
			}
		}
		for i := 0; i+2 <= len(w); i++ {
			t.Bigrams[w[i:i+2]]++
		}
		for i := 0; i+3 <= len(w); i++ {
			t.Trigrams[w[i:i+3]]++
		}
	}

	normalize(t.Letters)
	normalize(t.Bigrams)
	normalize(t.Trigrams)
	for i := range t.Positions {
		normalize(t.Positions[i])
	}
	return t
}

// normalize divides every count by the table total, in place.
func normalize(m map[string]float64) {
	var total float64
	for _, v := range m {
		total += v
	}
	if total == 0 {
		return
	}
	for k, v := range m {
		m[k] = v / total
	}
}
