// internal/solver/score.go
//
// Heuristic word scoring and its weight configuration.
// Responsibilities:
//   - Weights: the five tunable knobs of the linear scoring formula, with
//     documented defaults and optional YAML file loading.
//   - Score: rank a word by corpus statistics. Higher is a better guess.
//
// The formula is a fixed weighted sum, deliberately not a search or an
// entropy calculation:
//
//   repeatPenalty_or_1 * (letter*L + bigram*B + trigram*T + position*P)
//
// where L sums letter frequencies over the word's distinct letters, B and T
// sum the word's contiguous 2- and 3-gram frequencies, and P sums each
// letter's frequency at its own position. Missing table entries count as 0.

package solver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Kerpackie/WorldeSimulator/internal/stats"
)

// Weights configures the scoring heuristic.
// RepeatPenalty is a multiplicative factor in (0,1] applied to the whole
// score when the word's letters are not all distinct.
type Weights struct {
	Letter        float64 `yaml:"letter"`
	Bigram        float64 `yaml:"bigram"`
	Trigram       float64 `yaml:"trigram"`
	Position      float64 `yaml:"position"`
	RepeatPenalty float64 `yaml:"repeatPenalty"`
}

// DefaultWeights returns the documented default configuration.
func DefaultWeights() Weights {
	return Weights{
		Letter:        1.0,
		Bigram:        0.5,
		Trigram:       0.25,
		Position:      0.75,
		RepeatPenalty: 0.9,
	}
}

// LoadWeights reads a YAML weights file. Missing keys keep their defaults;
// unknown keys are rejected.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights %s: %w", path, err)
	}
	if err := unmarshalStrict(data, &w); err != nil {
		return w, fmt.Errorf("parse weights %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return w, fmt.Errorf("weights %s: %w", path, err)
	}
	return w, nil
}

// unmarshalStrict is yaml.Unmarshal with unknown keys rejected.
// An empty document is a no-op, not an error.
func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects configurations the scorer cannot use.
func (w Weights) Validate() error {
	if w.RepeatPenalty <= 0 || w.RepeatPenalty > 1 {
		return fmt.Errorf("repeatPenalty must be in (0,1], got %v", w.RepeatPenalty)
	}
	return nil
}

// Score ranks word using the frequency tables and weights.
// An empty table set scores every word 0.
func Score(word string, t stats.Tables, w Weights) float64 {
	var letterScore float64
	distinct := 0
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if seen[c] {
			continue
		}
		seen[c] = true
		distinct++
		letterScore += t.Letters[string(word[i])]
	}

	var bigramScore float64
	for i := 0; i+2 <= len(word); i++ {
		bigramScore += t.Bigrams[word[i:i+2]]
	}
	var trigramScore float64
	for i := 0; i+3 <= len(word); i++ {
		trigramScore += t.Trigrams[word[i:i+3]]
	}
	var positionScore float64
	for i := 0; i < len(word) && i < len(t.Positions); i++ {
		positionScore += t.Positions[i][string(word[i])]
	}

	penalty := 1.0
	if distinct < len(word) {
		penalty = w.RepeatPenalty
	}
	return penalty * (w.Letter*letterScore +
		w.Bigram*bigramScore +
		w.Trigram*trigramScore +
		w.Position*positionScore)
}
