// Package mnemonic represents candidate seed phrases and gates them on
// the embedded checksum before any key derivation runs.
package mnemonic

import (
	"crypto/sha256"
	"strings"

	"seedrecover/internal/wordlist"
)

// wordBits is the bit width of one vocabulary index.
const wordBits = 11

// MaxWords is the longest supported phrase. Above 24 words the checksum
// no longer fits in a single digest byte.
const MaxWords = 24

// Phrase is an ordered sequence of vocabulary indices. Phrases are
// ephemeral: the enumerator reuses the backing array between pulls, so
// a phrase must be copied before it outlives the current candidate.
type Phrase []int

// ValidLength reports whether n words can carry whole entropy bytes
// plus a checksum suffix.
func ValidLength(n int) bool {
	return n > 0 && n%3 == 0 && n <= MaxWords
}

// Split packs the phrase into length*11 bits, splits off the trailing
// length/3 checksum bits and verifies them against the leading bits of
// SHA-256 over the entropy bytes. It returns the recovered entropy and
// ok=false on checksum mismatch. Split runs on every enumerated
// candidate, so it stays O(length) with a single allocation.
func (p Phrase) Split() (entropy []byte, ok bool) {
	n := len(p)
	if !ValidLength(n) {
		return nil, false
	}
	checkBits := n / 3
	entropy = make([]byte, (n*wordBits-checkBits)/8)

	var acc uint
	var accBits int
	i := 0
	for _, w := range p {
		acc = acc<<wordBits | uint(w)
		accBits += wordBits
		for accBits >= 8 && i < len(entropy) {
			accBits -= 8
			entropy[i] = byte(acc >> accBits)
			i++
		}
		acc &= 1<<accBits - 1
	}

	// The accumulator now holds exactly the checksum suffix.
	check := byte(acc)
	digest := sha256.Sum256(entropy)
	if digest[0]>>(8-checkBits) != check {
		return nil, false
	}
	return entropy, true
}

// Words renders the phrase through the vocabulary.
func (p Phrase) Words(wl *wordlist.Wordlist) []string {
	words := make([]string, len(p))
	for i, w := range p {
		words[i] = wl.Word(w)
	}
	return words
}

// String joins the rendered words with spaces.
func (p Phrase) String(wl *wordlist.Wordlist) string {
	return strings.Join(p.Words(wl), " ")
}

// Parse converts a space-separated mnemonic into a phrase without
// checking the checksum.
func Parse(mnemonic string, wl *wordlist.Wordlist) (Phrase, bool) {
	words := strings.Fields(mnemonic)
	p := make(Phrase, len(words))
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, false
		}
		p[i] = idx
	}
	return p, true
}
