package sample

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"sort"
)

// Take returns up to n words from corpus as a reproducible sample: words are
// ordered by HMAC-SHA256(seed, word) and the first n are taken. The same
// seed and corpus produce the same sample on any machine. n <= 0 or
// n >= len(corpus) returns the corpus as-is.
func Take(corpus []string, seed string, n int) []string {
	if n <= 0 || n >= len(corpus) {
		return corpus
	}
	type keyed struct {
		word string
		key  []byte
	}
	ks := make([]keyed, len(corpus))
	for i, w := range corpus {
		h := hmac.New(sha256.New, []byte(seed))
		h.Write([]byte(w))
		ks[i] = keyed{word: w, key: h.Sum(nil)}
	}
	sort.Slice(ks, func(i, j int) bool {
		return bytes.Compare(ks[i].key, ks[j].key) < 0
	})
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ks[i].word
	}
	return out
}
