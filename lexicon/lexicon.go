// Package lexicon holds the dictionary and the prefix and substring indices
// the move generator prunes with.
package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// Vocabulary is a word list plus every prefix and every substring of its
// words. words ⊆ prefixes ⊆ substrings. It is read-only once built and safe
// for concurrent use.
type Vocabulary struct {
	words      map[string]struct{}
	prefixes   map[string]struct{}
	substrings map[string]struct{}
}

// Build indexes words. Words are upper-cased and surrounding whitespace is
// dropped; empty strings are ignored.
func Build(words []string) *Vocabulary {
	v := &Vocabulary{
		words:      make(map[string]struct{}, len(words)),
		prefixes:   make(map[string]struct{}, len(words)*2),
		substrings: make(map[string]struct{}, len(words)*4),
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := v.words[w]; ok {
			continue
		}
		v.words[w] = struct{}{}
		for end := 1; end <= len(w); end++ {
			v.prefixes[w[:end]] = struct{}{}
		}
		for start := 0; start < len(w); start++ {
			for end := start + 1; end <= len(w); end++ {
				v.substrings[w[start:end]] = struct{}{}
			}
		}
	}
	return v
}

func (v *Vocabulary) IsWord(s string) bool {
	_, ok := v.words[s]
	return ok
}

// IsPrefix is true if s starts some word. Every word is its own prefix.
func (v *Vocabulary) IsPrefix(s string) bool {
	_, ok := v.prefixes[s]
	return ok
}

func (v *Vocabulary) IsSubstring(s string) bool {
	_, ok := v.substrings[s]
	return ok
}

func (v *Vocabulary) NumWords() int      { return len(v.words) }
func (v *Vocabulary) NumPrefixes() int   { return len(v.prefixes) }
func (v *Vocabulary) NumSubstrings() int { return len(v.substrings) }

// Words returns the word list in sorted order.
func (v *Vocabulary) Words() []string {
	words := make([]string, 0, len(v.words))
	for w := range v.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// SizeEstimate is a rough count of the bytes the three indices hold.
func (v *Vocabulary) SizeEstimate() int64 {
	// string header plus an average map entry overhead
	const perEntry = 16 + 32
	var n int64
	for _, m := range []map[string]struct{}{v.words, v.prefixes, v.substrings} {
		for k := range m {
			n += int64(len(k)) + perEntry
		}
	}
	return n
}

func (v *Vocabulary) String() string {
	return fmt.Sprintf("Vocabulary(%d words, %d prefixes, %d substrings)",
		len(v.words), len(v.prefixes), len(v.substrings))
}
