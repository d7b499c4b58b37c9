// internal/solver/simulate.go
//
// The simulation loop: one full solve attempt for a single target word.
// Responsibilities:
//   - Validate the target against the corpus before starting.
//   - Repeatedly select the highest-scoring unused candidate, evaluate
//     feedback, merge constraints, filter, until solved, budget exhausted,
//     or the candidate pool runs dry.
//   - Always return a definite AttemptResult; the only error is the
//     unknown-target precondition.
//
// A Simulator is read-only after construction (corpus, tables, precomputed
// scores), so one instance can serve many concurrent Solve calls; each call
// owns its candidate pool and constraints.

package solver

import (
	"errors"

	"github.com/Kerpackie/WorldeSimulator/internal/stats"
)

// DefaultMaxAttempts is the guess budget for one attempt.
const DefaultMaxAttempts = 12

// ErrUnknownTarget is returned by Solve when the target word is not in the
// corpus: the loop can only ever guess corpus words, so such a target is
// unreachable and the attempt is rejected before it starts.
var ErrUnknownTarget = errors.New("solver: target word not in corpus")

// Simulator runs solve attempts over a fixed corpus with fixed statistics
// and weights.
type Simulator struct {
	corpus      []string
	corpusSet   map[string]struct{}
	scores      map[string]float64
	maxAttempts int
}

// New builds a Simulator. Word scores depend only on the immutable tables
// and weights, never on feedback, so they are computed once here rather
// than on every selection pass.
func New(corpus []string, tables stats.Tables, weights Weights) *Simulator {
	s := &Simulator{
		corpus:      corpus,
		corpusSet:   make(map[string]struct{}, len(corpus)),
		scores:      make(map[string]float64, len(corpus)),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, w := range corpus {
		s.corpusSet[w] = struct{}{}
		s.scores[w] = Score(w, tables, weights)
	}
	return s
}

// SetMaxAttempts overrides the guess budget. Values below 1 are ignored.
func (s *Simulator) SetMaxAttempts(n int) {
	if n >= 1 {
		s.maxAttempts = n
	}
}

// Solve runs one full attempt against target.
//
// Loop per iteration: pick the best unused candidate (selectGuess), log it,
// then either stop (solved / budget exhausted) or evaluate feedback, merge
// it into the constraints and filter the pool. Termination is guaranteed:
// the used set grows every iteration and both it and the iteration count
// are bounded.
//
// An empty corpus is immediately stuck with zero attempts; for a non-empty
// corpus a target outside it is ErrUnknownTarget.
func (s *Simulator) Solve(target string) (AttemptResult, error) {
	res := AttemptResult{Word: target, GuessLog: []GuessLogEntry{}}

	if len(s.corpus) == 0 {
		res.Outcome = OutcomeStuck
		return res, nil
	}
	if _, ok := s.corpusSet[target]; !ok {
		return res, ErrUnknownTarget
	}

	candidates := append([]string(nil), s.corpus...)
	constraints := NewConstraints()
	used := make(map[string]struct{})

	for {
		guess, ok := s.selectGuess(candidates, used)
		if !ok {
			res.Outcome = OutcomeStuck
			return res, nil
		}
		used[guess] = struct{}{}
		res.Attempts++
		res.GuessLog = append(res.GuessLog, GuessLogEntry{Guess: guess, Remaining: len(candidates)})

		if guess == target {
			res.Solved = true
			res.Outcome = OutcomeSolved
			return res, nil
		}
		if res.Attempts >= s.maxAttempts {
			res.Outcome = OutcomeExhausted
			return res, nil
		}

		constraints.Merge(Evaluate(guess, target))
		candidates = Filter(candidates, constraints)
	}
}

// selectGuess returns the highest-scoring candidate not yet used.
// Equal scores break to the lexicographically smaller word, which makes
// selection deterministic for a given corpus and weights.
func (s *Simulator) selectGuess(candidates []string, used map[string]struct{}) (string, bool) {
	var best string
	bestScore := 0.0
	found := false
	for _, w := range candidates {
		if _, ok := used[w]; ok {
			continue
		}
		sc := s.scores[w]
		if !found || sc > bestScore || (sc == bestScore && w < best) {
			best, bestScore, found = w, sc, true
		}
	}
	return best, found
}
