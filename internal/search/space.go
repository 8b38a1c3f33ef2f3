// Package search builds the candidate space, enumerates candidate
// phrases and drives the recovery pipeline.
package search

import (
	"fmt"
	"log/slog"
	"strings"

	"seedrecover/internal/wordlist"
)

// Space holds one candidate set per phrase position. Missing positions
// share the full-vocabulary set.
type Space struct {
	// Sets holds candidate vocabulary indices per position.
	Sets [][]int

	// Missing lists the 0-based positions carrying the full
	// vocabulary.
	Missing []int
}

// Build resolves known words into candidate sets and assigns them to
// positions. Known words fill the non-missing positions in their given
// order; missing positions (0-based; trailing slots when nil) get the
// entire vocabulary. A known word absent from the vocabulary is
// logged, not rejected: fuzzy matching may still find candidates, and
// an empty candidate set simply yields zero results downstream.
func Build(known []string, wl *wordlist.Wordlist, maxDist, length int, missing []int) (*Space, error) {
	if len(known) > length {
		return nil, fmt.Errorf("more known words (%d) than phrase length %d", len(known), length)
	}
	needed := length - len(known)
	if missing == nil {
		for i := length - needed; i < length; i++ {
			missing = append(missing, i)
		}
	}
	if len(missing) < needed {
		return nil, fmt.Errorf("only %d positions given for %d missing words", len(missing), needed)
	}
	if len(missing) > needed {
		return nil, fmt.Errorf("%d positions given but only %d words are missing", len(missing), needed)
	}

	isMissing := make(map[int]bool, len(missing))
	for _, pos := range missing {
		if pos < 0 || pos >= length {
			return nil, fmt.Errorf("missing position %d outside phrase of length %d", pos+1, length)
		}
		if isMissing[pos] {
			return nil, fmt.Errorf("missing position %d given twice", pos+1)
		}
		isMissing[pos] = true
	}

	vocabulary := make([]int, wl.Len())
	for i := range vocabulary {
		vocabulary[i] = i
	}

	sets := make([][]int, length)
	next := 0
	for pos := 0; pos < length; pos++ {
		if isMissing[pos] {
			sets[pos] = vocabulary
			continue
		}
		word := known[next]
		next++
		if !wl.Contains(word) {
			slog.Warn("word not in wordlist", "word", word)
		}
		candidates := wl.Near(word, maxDist)
		names := make([]string, len(candidates))
		set := make([]int, len(candidates))
		for i, c := range candidates {
			idx, _ := wl.Index(c)
			set[i] = idx
			names[i] = c
		}
		slog.Info("resolved candidates", "word", word, "candidates", strings.Join(names, ", "))
		sets[pos] = set
	}

	return &Space{Sets: sets, Missing: missing}, nil
}

// Count returns the raw Cartesian product size, clamped at max. The
// space can be astronomically large; the enumerator never materializes
// it.
func (s *Space) Count(max uint64) uint64 {
	total := uint64(1)
	for _, set := range s.Sets {
		if uint64(len(set)) != 0 && total > max/uint64(len(set)) {
			return max
		}
		total *= uint64(len(set))
	}
	return total
}
