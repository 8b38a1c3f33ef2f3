// Package wordlist provides the mnemonic vocabulary: an ordered list of
// words whose list index carries the bit value used in checksum and
// entropy reconstruction.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the required vocabulary size. Each word encodes 11 bits, so
// the list must hold exactly 2^11 entries.
const Size = 2048

// Wordlist is an ordered, indexed vocabulary.
type Wordlist struct {
	words []string
	index map[string]int
}

// Default returns the built-in English vocabulary.
func Default() *Wordlist {
	wl, err := New(wordlists.English)
	if err != nil {
		panic(err)
	}
	return wl
}

// New builds a vocabulary from an ordered word list.
func New(words []string) (*Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("wordlist: need %d words, got %d", Size, len(words))
	}
	index := make(map[string]int, len(words))
	for i, w := range words {
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("wordlist: duplicate word %q", w)
		}
		index[w] = i
	}
	return &Wordlist{words: words, index: index}, nil
}

// Load reads a vocabulary from a file, one word per line.
func Load(path string) (*Wordlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: scanning file: %w", err)
	}
	return New(words)
}

// Len returns the vocabulary size.
func (wl *Wordlist) Len() int {
	return len(wl.words)
}

// Contains reports whether word is in the vocabulary.
func (wl *Wordlist) Contains(word string) bool {
	_, ok := wl.index[word]
	return ok
}

// Index returns the vocabulary position of word.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return i, ok
}

// Word returns the word at vocabulary position i.
func (wl *Wordlist) Word(i int) string {
	return wl.words[i]
}

// Near returns all vocabulary words within maxDist edits of word, the
// exact match first and the rest in vocabulary order. With maxDist 0
// the result is the exact match alone, or empty if word is unknown.
func (wl *Wordlist) Near(word string, maxDist int) []string {
	var near []string
	if wl.Contains(word) {
		near = append(near, word)
	}
	if maxDist <= 0 {
		return near
	}
	for _, w := range wl.words {
		if w == word {
			continue
		}
		if editDistance(word, w) <= maxDist {
			near = append(near, w)
		}
	}
	return near
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
