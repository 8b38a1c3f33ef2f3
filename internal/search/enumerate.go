package search

import (
	"seedrecover/internal/mnemonic"
)

// Enumerator lazily produces candidate phrases: the Cartesian product
// over per-position candidate sets, optionally wrapped in permutations
// of the slot assignment. The phrase returned by Next reuses one
// backing array; callers must copy it if it outlives the candidate.
//
// With order search enabled, overlapping candidate sets can emit the
// same concrete phrase through different permutations. That
// duplication is deliberately not suppressed here; duplicates collapse
// later at the derived-address level.
type Enumerator struct {
	sets  [][]int
	order bool

	perm []int
	cur  *odometer
	done bool
}

// NewEnumerator builds an enumerator over the candidate space. With
// order disabled, enumeration order is deterministic: position-major,
// candidate-index-minor, the last position varying fastest. With order
// enabled, slot-assignment permutations are visited in lexicographic
// order of the assignment vector, up to k! of them for k slots.
func NewEnumerator(space *Space, order bool) *Enumerator {
	e := &Enumerator{sets: space.Sets, order: order}
	e.perm = make([]int, len(space.Sets))
	for i := range e.perm {
		e.perm[i] = i
	}
	return e
}

// Next returns the next candidate phrase, or ok=false when the space
// is exhausted.
func (e *Enumerator) Next() (mnemonic.Phrase, bool) {
	for !e.done {
		if e.cur == nil {
			assigned := make([][]int, len(e.perm))
			for i, slot := range e.perm {
				assigned[i] = e.sets[slot]
			}
			e.cur = newOdometer(assigned)
		}
		if p, ok := e.cur.next(); ok {
			return p, true
		}
		e.cur = nil
		if !e.order || !nextPermutation(e.perm) {
			e.done = true
		}
	}
	return nil, false
}

// odometer walks the Cartesian product of candidate sets, last
// position fastest.
type odometer struct {
	sets    [][]int
	indices []int
	phrase  mnemonic.Phrase
	started bool
	done    bool
}

func newOdometer(sets [][]int) *odometer {
	o := &odometer{
		sets:    sets,
		indices: make([]int, len(sets)),
		phrase:  make(mnemonic.Phrase, len(sets)),
	}
	for _, set := range sets {
		if len(set) == 0 {
			o.done = true
		}
	}
	return o
}

func (o *odometer) next() (mnemonic.Phrase, bool) {
	if o.done {
		return nil, false
	}
	if o.started {
		pos := len(o.indices) - 1
		for pos >= 0 {
			o.indices[pos]++
			if o.indices[pos] < len(o.sets[pos]) {
				break
			}
			o.indices[pos] = 0
			pos--
		}
		if pos < 0 {
			o.done = true
			return nil, false
		}
	}
	o.started = true
	for i, idx := range o.indices {
		o.phrase[i] = o.sets[i][idx]
	}
	return o.phrase, true
}

// nextPermutation advances p to its lexicographic successor, returning
// false after the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
