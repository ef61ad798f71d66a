// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package exact

import "github.com/frank-number/filter"

// Pool is the brute-force alternative to Solve: instead of searching
// for a single complementary orientation, it accumulates every
// strongly-connected candidate's deletable-arc set and checks each new
// set against all previously seen ones for a complementary pair.
//
// Subset-dominated sets are discarded on arrival (a set that is a subset
// of one already stored can never be the smaller half of a complementary
// pair that the stored set isn't already part of), and sets later found to
// be subsets of an incoming set are tombstoned (replaced with the empty
// set) rather than physically removed, reusing the freed slot for the next
// insertion. The empty BitSet is the free-slot sentinel; there is no
// separate Option type or free list. A deletable-arc set that reaches the
// pool is never empty (passesNecessaryCondition requires every vertex to
// have a deletable edge), so the empty BitSet unambiguously marks a free
// slot.
type Pool struct {
	full  frank.BitSet // E(G), to recognize a complementary pair
	slots []frank.BitSet
}

// NewPool returns an empty pool for a graph with the given edge bitset
// universe (every edge bitset passed to Insert must share its capacity).
func NewPool(full frank.BitSet) *Pool {
	return &Pool{full: full}
}

// Size returns the number of occupied (non-tombstoned) slots.
func (p *Pool) Size() int {
	n := 0
	for _, s := range p.slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// Insert adds deletable-arc set t to the pool, returning 2 if t completes
// a complementary pair with some stored set, 0 otherwise (t may or may not
// have actually been stored; the caller only needs the verdict).
func (p *Pool) Insert(t frank.BitSet, stats *frank.Stats) int {
	if stats == nil {
		stats = &frank.Stats{}
	}
	firstTombstone := -1
	for i, si := range p.slots {
		if si.Empty() {
			if firstTombstone < 0 {
				firstTombstone = i
			}
			continue
		}
		if t.Subset(si) {
			stats.PoolSubsetDiscards++
			return 0
		}
		if si.Subset(t) {
			p.slots[i] = frank.BitSet{}
			stats.PoolSupersetPromotions++
			if firstTombstone < 0 {
				firstTombstone = i
			}
			continue
		}
		if si.Union(t).Equal(p.full) {
			p.store(t, firstTombstone)
			if n := p.Size(); n > stats.PoolPeakSize {
				stats.PoolPeakSize = n
			}
			return 2
		}
	}
	p.store(t, firstTombstone)
	if n := p.Size(); n > stats.PoolPeakSize {
		stats.PoolPeakSize = n
	}
	return 0
}

func (p *Pool) store(t frank.BitSet, tombstone int) {
	if tombstone >= 0 {
		p.slots[tombstone] = t
		return
	}
	p.slots = append(p.slots, t)
}
