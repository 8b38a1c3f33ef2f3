// Package verify checks derived stake addresses against the configured
// backends: a static membership set and a remote activity oracle.
package verify

import (
	"context"
	"log/slog"

	"seedrecover/internal/lookup"
)

// ActivityOracle reports whether a stake address has on-chain
// activity. A returned error means the oracle is unusable for the
// rest of the run.
type ActivityOracle interface {
	Active(ctx context.Context, stakeAddress string) (bool, error)
}

// OracleState tracks the one-shot circuit breaker. The transition to
// OracleDisabled is irreversible within a run.
type OracleState int

const (
	OracleActive OracleState = iota
	OracleDisabled
)

// Result holds the per-backend verdicts for one address. Verbose is
// set when no backend produced a verdict, so the caller can report the
// address unconditionally rather than stay silent.
type Result struct {
	Searched bool
	Active   bool
	Verbose  bool
}

// Found reports whether the address should be emitted.
func (r Result) Found() bool {
	return r.Searched || r.Active || r.Verbose
}

// Verifier combines the optional backends. It is not safe for
// concurrent use; the breaker state would need a lock if derivation
// ever fans out.
type Verifier struct {
	set    *lookup.StakeSet
	oracle ActivityOracle
	state  OracleState
	log    *slog.Logger
}

// New builds a verifier. Either backend may be nil.
func New(set *lookup.StakeSet, oracle ActivityOracle, log *slog.Logger) *Verifier {
	if log == nil {
		log = slog.Default()
	}
	return &Verifier{set: set, oracle: oracle, log: log}
}

// OracleState returns the current breaker state.
func (v *Verifier) OracleState() OracleState {
	return v.state
}

// Check runs the configured backends for one address. The first oracle
// failure is reported once and flips the breaker; later candidates
// skip the oracle entirely while static checks continue.
func (v *Verifier) Check(ctx context.Context, addr string) Result {
	var r Result
	backend := false

	if v.set != nil {
		backend = true
		r.Searched = v.set.Contains(addr)
	}

	if v.oracle != nil && v.state == OracleActive {
		active, err := v.oracle.Active(ctx, addr)
		if err != nil {
			v.state = OracleDisabled
			v.log.Error("oracle disabled for the rest of the run", "error", err)
		} else {
			backend = true
			r.Active = active
		}
	}

	r.Verbose = !backend
	return r
}
