// internal/solver/filter.go
//
// Candidate filtering against accumulated feedback constraints.

package solver

import "strings"

// Filter returns the candidates still consistent with the constraints.
// It is pure and stable: the input is never mutated and the output keeps
// the input's relative order. An empty input yields an empty output.
//
// A word survives iff:
//   - every fixed position holds its confirmed letter;
//   - every misplaced letter occurs somewhere in the word, but not at its
//     disqualified position;
//   - no absent letter occurs in the word, unless that letter is also a
//     fixed or misplaced letter (the duplicate-letter case: one occurrence
//     confirmed present, the excess occurrence marked absent must not
//     reject words that contain the letter at all).
func Filter(candidates []string, c *Constraints) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if satisfies(w, c) {
			out = append(out, w)
		}
	}
	return out
}

// satisfies reports whether one word meets every accumulated constraint.
func satisfies(w string, c *Constraints) bool {
	for pos, letter := range c.fixed {
		if w[pos] != letter {
			return false
		}
	}
	for _, lp := range c.misplaced {
		if strings.IndexByte(w, lp.Letter) < 0 || w[lp.Pos] == lp.Letter {
			return false
		}
	}
	for letter := range c.absent {
		if strings.IndexByte(w, letter) < 0 {
			continue
		}
		// Letter is present in the word and marked absent: only fatal when
		// the letter is not simultaneously confirmed elsewhere.
		if !c.hasFixedLetter(letter) && !c.hasMisplacedLetter(letter) {
			return false
		}
	}
	return true
}
