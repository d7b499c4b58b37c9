// internal/solver/feedback.go
//
// Feedback evaluation and constraint accumulation for one simulation attempt.
// Responsibilities:
//   - Evaluate a guess against a hidden target into the three-way per-letter
//     classification (fixed / misplaced / absent) using the two-pass
//     remaining-count algorithm, so repeated letters behave exactly as in
//     the real game.
//   - Accumulate feedback from successive guesses into a Constraints value
//     consumed by the candidate filter.
//
// Notes:
//   - Words are assumed lowercase a-z; the words package guarantees this.
//   - An absent letter can simultaneously be fixed or misplaced elsewhere
//     (excess occurrence in the guess). The filter reconciles that; the
//     structures here just record what was observed.

package solver

import "fmt"

// LetterPos is a (letter, position) pair for a misplaced observation:
// the letter occurs in the target, but not at this position.
type LetterPos struct {
	Letter byte
	Pos    int
}

// Feedback is the classification of one guess against one target.
type Feedback struct {
	Fixed     map[int]byte // position -> confirmed letter
	Misplaced []LetterPos  // present, wrong position
	Absent    []byte       // letters with no uncounted occurrence left
}

// Evaluate classifies every letter of guess against target.
//
// Pass 1:
//   - Mark exact matches as fixed.
//   - Count the remaining (non-fixed) target letters.
//
// Pass 2, left to right over the non-fixed guess letters:
//   - If there is remaining count for the letter, mark misplaced and
//     decrement; otherwise mark absent.
//
// The running count guarantees that for any letter the number of fixed plus
// misplaced classifications never exceeds the letter's count in the target:
// guessing "aaaaa" against "aabbb" yields two fixed and three absent, never
// five present.
//
// Evaluate is pure. Equal lengths are a caller contract; a mismatch panics.
func Evaluate(guess, target string) Feedback {
	if len(guess) != len(target) {
		panic(fmt.Sprintf("solver: guess %q and target %q differ in length", guess, target))
	}
	n := len(guess)
	fb := Feedback{Fixed: make(map[int]byte)}

	// Letter counts for the non-fixed target positions (a-z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			fb.Fixed[i] = guess[i]
		} else {
			counts[target[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if _, ok := fb.Fixed[i]; ok {
			continue
		}
		c := guess[i]
		if counts[c-'a'] > 0 {
			fb.Misplaced = append(fb.Misplaced, LetterPos{Letter: c, Pos: i})
			counts[c-'a']--
		} else {
			fb.Absent = append(fb.Absent, c)
		}
	}
	return fb
}

// Constraints is the accumulated knowledge from every guess so far in one
// attempt. It only ever grows; Filter applies it to a candidate pool.
type Constraints struct {
	fixed     map[int]byte
	misplaced []LetterPos
	misSet    map[LetterPos]struct{}
	absent    map[byte]struct{}
}

// NewConstraints returns an empty constraint set.
func NewConstraints() *Constraints {
	return &Constraints{
		fixed:  make(map[int]byte),
		misSet: make(map[LetterPos]struct{}),
		absent: make(map[byte]struct{}),
	}
}

// Merge folds one guess's feedback into the accumulated constraints:
// fixed positions are added or overwritten, misplaced pairs are set-unioned,
// absent letters are set-unioned.
func (c *Constraints) Merge(fb Feedback) {
	for pos, letter := range fb.Fixed {
		c.fixed[pos] = letter
	}
	for _, lp := range fb.Misplaced {
		if _, ok := c.misSet[lp]; ok {
			continue
		}
		c.misSet[lp] = struct{}{}
		c.misplaced = append(c.misplaced, lp)
	}
	for _, letter := range fb.Absent {
		c.absent[letter] = struct{}{}
	}
}

// hasFixedLetter reports whether letter is a confirmed letter at any position.
func (c *Constraints) hasFixedLetter(letter byte) bool {
	for _, l := range c.fixed {
		if l == letter {
			return true
		}
	}
	return false
}

// hasMisplacedLetter reports whether letter appears in any misplaced pair.
func (c *Constraints) hasMisplacedLetter(letter byte) bool {
	for _, lp := range c.misplaced {
		if lp.Letter == letter {
			return true
		}
	}
	return false
}
