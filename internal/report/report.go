// internal/report/report.go
//
// Result sinks and batch aggregation.
// Responsibilities:
//   - Write the per-word summary CSV (word,attempts,solved).
//   - Write the detailed JSON log (full guess history per word).
//   - Aggregate a batch into a Summary (solved/failed counts, attempt
//     average, min, max and distribution).
//
// Field names are the stable contract the visualization side consumes;
// change them and the charts downstream break.

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Kerpackie/WorldeSimulator/internal/solver"
)

// WriteSummaryCSV writes one row per result: word,attempts,solved.
func WriteSummaryCSV(w io.Writer, results []solver.AttemptResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"word", "attempts", "solved"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{r.Word, strconv.Itoa(r.Attempts), strconv.FormatBool(r.Solved)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetailJSON writes the full results array, indented.
func WriteDetailJSON(w io.Writer, results []solver.AttemptResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// SaveFiles writes <prefix>_summary.csv and <prefix>_details.json.
func SaveFiles(prefix string, results []solver.AttemptResult) error {
	csvPath := prefix + "_summary.csv"
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", csvPath, err)
	}
	if err := WriteSummaryCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", csvPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	jsonPath := prefix + "_details.json"
	f, err = os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", jsonPath, err)
	}
	if err := WriteDetailJSON(f, results); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	return f.Close()
}

// Summary aggregates one batch run. Attempt statistics cover solved words
// only; failed words are listed by name.
type Summary struct {
	Tested       int         `json:"tested"`
	SolvedCount  int         `json:"solved"`
	Failed       []string    `json:"failed"`
	AvgAttempts  float64     `json:"avgAttempts"`
	MinAttempts  int         `json:"minAttempts"`
	MaxAttempts  int         `json:"maxAttempts"`
	Distribution map[int]int `json:"distribution"`
}

// Summarize computes the batch summary over all results.
func Summarize(results []solver.AttemptResult) Summary {
	s := Summary{Tested: len(results), Distribution: make(map[int]int)}
	total := 0
	for _, r := range results {
		if !r.Solved {
			s.Failed = append(s.Failed, r.Word)
			continue
		}
		s.SolvedCount++
		total += r.Attempts
		s.Distribution[r.Attempts]++
		if s.MinAttempts == 0 || r.Attempts < s.MinAttempts {
			s.MinAttempts = r.Attempts
		}
		if r.Attempts > s.MaxAttempts {
			s.MaxAttempts = r.Attempts
		}
	}
	if s.SolvedCount > 0 {
		s.AvgAttempts = float64(total) / float64(s.SolvedCount)
	}
	return s
}
