// internal/words/words.go
//
// Corpus loading for the simulator.
//
// Responsibilities:
//   - Load the word corpus from an environment-provided file or URL, or fall
//     back to a small embedded default so the binary runs unconfigured.
//   - Normalize and validate: lowercase, exactly 5 letters a-z, deduplicated
//     preserving first-seen order.
//   - Hand the core a plain Corpus value; the core never sees the transport.
//
// Initialization behavior (Load):
//   1. If WORDS_FILE is set, read that file.
//   2. Else if WORDS_URL is set, fetch it over HTTP.
//   3. Else fall back to the embedded default list.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//   WORDS_URL=https://raw.githubusercontent.com/tabatkins/wordle-list/main/words

package words

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// WordLen is the only word length the corpus accepts.
const WordLen = 5

// DefaultURL is the upstream answer list the original simulator fetches.
const DefaultURL = "https://raw.githubusercontent.com/tabatkins/wordle-list/main/words"

// fetchTimeout bounds a corpus download.
const fetchTimeout = 30 * time.Second

//go:embed default_words.txt
var embeddedWords string

// Corpus is an ordered, deduplicated sequence of valid lowercase 5-letter
// words. It is read-only for the lifetime of a simulation run.
type Corpus []string

// ErrEmpty is returned when a source yields no valid words.
var ErrEmpty = errors.New("words: corpus is empty")

// Load picks a corpus source from the environment (see package doc) and
// returns the loaded corpus.
func Load(ctx context.Context) (Corpus, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return FromFile(path)
	}
	if url := os.Getenv("WORDS_URL"); url != "" {
		return FetchURL(ctx, url)
	}
	return Embedded()
}

// FromFile loads one word per line from a file.
func FromFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()
	c, err := fromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return c, nil
}

// FetchURL downloads the corpus over HTTP, one word per line.
func FetchURL(ctx context.Context, url string) (Corpus, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch corpus %s: unexpected status %s", url, resp.Status)
	}
	c, err := fromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus %s: %w", url, err)
	}
	return c, nil
}

// Embedded returns the compiled-in default corpus.
func Embedded() (Corpus, error) {
	return fromReader(strings.NewReader(embeddedWords))
}

// fromReader scans words line by line, lowercases, trims, keeps only valid
// 5-letter alphabetic words and drops duplicates preserving order.
func fromReader(r io.Reader) (Corpus, error) {
	var out Corpus
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) != WordLen || !isAlpha(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Contains reports whether w is in the corpus.
func (c Corpus) Contains(w string) bool {
	for _, x := range c {
		if x == w {
			return true
		}
	}
	return false
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
