// internal/solver/types.go
//
// Result types produced by a simulation attempt.
// Defines:
//   - Outcome: terminal state of one attempt (solved/exhausted/stuck).
//   - GuessLogEntry: one record per guess issued.
//   - AttemptResult: full record of one attempt against one target.

package solver

// Outcome is the terminal state reached by one simulation attempt.
// Possible values:
//   - "solved":    the guess matched the target within the attempt budget.
//   - "exhausted": the attempt budget ran out before the target was found.
//   - "stuck":     filtering emptied the candidate pool; nothing left to guess.
type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeStuck     Outcome = "stuck"
)

// GuessLogEntry records one issued guess together with the size of the
// candidate pool the guess was chosen from.
type GuessLogEntry struct {
	Guess     string `json:"guess"`
	Remaining int    `json:"remaining"`
}

// AttemptResult is the terminal record of one simulation attempt.
// Attempts counts guesses actually issued, so on exhaustion it equals the
// attempt budget and on a stuck pool it is however many guesses went out
// before filtering emptied the pool.
type AttemptResult struct {
	Word     string          `json:"word"`
	Solved   bool            `json:"solved"`
	Outcome  Outcome         `json:"outcome"`
	Attempts int             `json:"attempts"`
	GuessLog []GuessLogEntry `json:"guessLog"`
}
