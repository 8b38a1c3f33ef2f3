// Package lookup holds the static stake-address membership set and its
// loaders.
package lookup

import (
	"github.com/bits-and-blooms/bloom/v3"
)

const falsePositiveRate = 0.001

// StakeSet is an immutable membership set of stake addresses. A bloom
// filter screens out most misses before the exact map is consulted.
// Lookups are pure and never fail.
type StakeSet struct {
	filter *bloom.BloomFilter
	addrs  map[string]struct{}
}

// NewStakeSet builds a set from address strings. Duplicates collapse.
func NewStakeSet(addresses []string) *StakeSet {
	capacity := uint(len(addresses))
	if capacity == 0 {
		capacity = 1
	}
	s := &StakeSet{
		filter: bloom.NewWithEstimates(capacity, falsePositiveRate),
		addrs:  make(map[string]struct{}, len(addresses)),
	}
	for _, addr := range addresses {
		s.filter.AddString(addr)
		s.addrs[addr] = struct{}{}
	}
	return s
}

// Contains reports whether addr is in the set.
func (s *StakeSet) Contains(addr string) bool {
	if !s.filter.TestString(addr) {
		return false
	}
	_, ok := s.addrs[addr]
	return ok
}

// Len returns the number of distinct addresses.
func (s *StakeSet) Len() int {
	return len(s.addrs)
}
