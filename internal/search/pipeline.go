package search

import (
	"context"

	"seedrecover/internal/keyderiv"
	"seedrecover/internal/verify"
	"seedrecover/internal/wordlist"
)

// Match is one reported candidate: a distinct derived address together
// with the phrase that produced it and the backend verdicts.
type Match struct {
	Address  string
	Words    []string
	Searched bool
	Active   bool
}

// Stats counts the funnel stages of one run.
type Stats struct {
	Enumerated    int64
	ChecksumValid int64
	Distinct      int64
}

// Pipeline is the single-pass recovery driver: enumerate, checksum,
// derive, deduplicate, verify. Stages run synchronously per candidate;
// the enumerator is the sole generator.
type Pipeline struct {
	Enum     *Enumerator
	Wordlist *wordlist.Wordlist
	Network  keyderiv.Network
	Verifier *verify.Verifier

	// seen is the process-scoped dedup set, keyed by derived address.
	// It grows monotonically and is never persisted; its size is
	// bounded by the checksum-valid candidates, a tiny fraction of the
	// raw space.
	seen map[string]struct{}
}

// Run pulls candidates until the space is exhausted or ctx is
// cancelled, invoking report for each match in enumeration order.
func (p *Pipeline) Run(ctx context.Context, report func(Match)) (Stats, error) {
	var stats Stats
	p.seen = make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		phrase, ok := p.Enum.Next()
		if !ok {
			return stats, nil
		}
		stats.Enumerated++

		entropy, ok := phrase.Split()
		if !ok {
			continue
		}
		stats.ChecksumValid++

		addr := keyderiv.StakeAddress(entropy, p.Network)
		if _, dup := p.seen[addr]; dup {
			continue
		}
		p.seen[addr] = struct{}{}
		stats.Distinct++

		result := p.Verifier.Check(ctx, addr)
		if result.Found() {
			report(Match{
				Address:  addr,
				Words:    phrase.Words(p.Wordlist),
				Searched: result.Searched,
				Active:   result.Active,
			})
		}
	}
}
