package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedrecover/internal/keyderiv"
	"seedrecover/internal/lookup"
	"seedrecover/internal/mnemonic"
	"seedrecover/internal/verify"
	"seedrecover/internal/wordlist"
)

const goldenZeroEntropyStake = "stake1u8j40zgr2gy4788kl54h6x3gu0pukq5lfr8nflufpg5dzaskqlx2l"

func runPipeline(t *testing.T, space *Space, order bool, verifier *verify.Verifier) ([]Match, Stats) {
	t.Helper()
	wl := wordlist.Default()
	p := &Pipeline{
		Enum:     NewEnumerator(space, order),
		Wordlist: wl,
		Network:  keyderiv.Mainnet,
		Verifier: verifier,
	}
	var matches []Match
	stats, err := p.Run(context.Background(), func(m Match) {
		matches = append(matches, m)
	})
	require.NoError(t, err)
	return matches, stats
}

// Two known words, length 3, trailing missing slot: the pipeline must
// report exactly the checksum-valid completions of the prefix.
func TestPipelineCompletesPrefix(t *testing.T) {
	wl := wordlist.Default()
	space, err := Build([]string{"abandon", "ability"}, wl, 0, 3, nil)
	require.NoError(t, err)

	// Independent expectation straight from the checksum filter.
	var validThird []string
	for w := 0; w < wl.Len(); w++ {
		if _, ok := (mnemonic.Phrase{0, 1, w}).Split(); ok {
			validThird = append(validThird, wl.Word(w))
		}
	}
	require.NotEmpty(t, validThird)

	matches, stats := runPipeline(t, space, false, verify.New(nil, nil, nil))

	assert.Equal(t, int64(wl.Len()), stats.Enumerated)
	assert.Equal(t, int64(len(validThird)), stats.ChecksumValid)
	assert.Equal(t, stats.ChecksumValid, stats.Distinct)

	require.Len(t, matches, len(validThird))
	for i, m := range matches {
		require.Len(t, m.Words, 3)
		assert.Equal(t, "abandon", m.Words[0])
		assert.Equal(t, "ability", m.Words[1])
		assert.Equal(t, validThird[i], m.Words[2], "matches must appear in enumeration order")
		assert.True(t, strings.HasPrefix(m.Address, "stake1"))
	}
}

// A fully-known valid mnemonic whose address is in the static set must
// be reported as searched (golden-vector regression).
func TestPipelineGoldenMnemonicAgainstStaticSet(t *testing.T) {
	wl := wordlist.Default()
	known := append(strings.Fields(strings.Repeat("abandon ", 11)), "about")
	space, err := Build(known, wl, 0, 12, nil)
	require.NoError(t, err)

	set := lookup.NewStakeSet([]string{goldenZeroEntropyStake})
	matches, stats := runPipeline(t, space, false, verify.New(set, nil, nil))

	assert.Equal(t, int64(1), stats.Enumerated)
	assert.Equal(t, int64(1), stats.ChecksumValid)
	assert.Equal(t, int64(1), stats.Distinct)

	require.Len(t, matches, 1)
	assert.Equal(t, goldenZeroEntropyStake, matches[0].Address)
	assert.True(t, matches[0].Searched)
	assert.False(t, matches[0].Active)
	assert.Equal(t, strings.Join(known, " "), strings.Join(matches[0].Words, " "))
}

// Order search over identical leading sets reaches the same phrases
// through several permutations; addresses must still be reported once.
func TestPipelineDeduplicatesAcrossPermutations(t *testing.T) {
	vocabulary := make([]int, 50)
	for i := range vocabulary {
		vocabulary[i] = i
	}
	space := &Space{Sets: [][]int{{0}, {0}, vocabulary}}

	matches, stats := runPipeline(t, space, true, verify.New(nil, nil, nil))

	assert.Equal(t, int64(6*50), stats.Enumerated, "3! assignments of 50 candidates each")
	assert.Greater(t, stats.ChecksumValid, stats.Distinct,
		"duplicate phrases must reach the checksum stage more than once")

	seen := make(map[string]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Address], "address %s reported twice", m.Address)
		seen[m.Address] = true
	}
	assert.Equal(t, stats.Distinct, int64(len(seen)))
}

func TestPipelineStopsOnCancel(t *testing.T) {
	wl := wordlist.Default()
	space, err := Build(nil, wl, 0, 3, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Pipeline{
		Enum:     NewEnumerator(space, false),
		Wordlist: wl,
		Network:  keyderiv.Mainnet,
		Verifier: verify.New(nil, nil, nil),
	}
	stats, err := p.Run(ctx, func(Match) {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Enumerated)
}
