// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

import "github.com/soniakeys/bits"

// MaxN is the build-time vertex-count ceiling. It bounds both the vertex
// bitsets and, since a cubic graph has 3N/2 edges, the arc bitsets indexed
// by edge number. A single Go constant stands in for what a C
// implementation would do with a compile-time choice between two fixed
// machine-word widths, so there is only one instantiation to maintain.
const MaxN = 128

// BitSet is a fixed-capacity set of small non-negative integers: vertex
// indices when used as a vertex set, edge numbers when used as an arc set.
// It is a thin, domain-named wrapper over bits.Bits, which already
// provides the word-packed representation and set operations this
// package's strongly-connected-component and traversal code needs.
type BitSet struct {
	b bits.Bits
}

// NewBitSet returns an empty BitSet with capacity for n elements, 0..n-1.
func NewBitSet(n int) BitSet {
	return BitSet{bits.New(n)}
}

// Singleton returns a BitSet of capacity n containing only i.
func Singleton(n, i int) BitSet {
	s := NewBitSet(n)
	s.Add(i)
	return s
}

// Full returns a BitSet of capacity n with every element 0..n-1 present.
func Full(n int) BitSet {
	s := NewBitSet(n)
	s.b.SetAll()
	return s
}

// Add inserts i into the set. Adding an already-present element is a no-op.
func (s *BitSet) Add(i int) { s.b.SetBit(i, 1) }

// Remove deletes i from the set. Removing an absent element is a no-op.
func (s *BitSet) Remove(i int) { s.b.SetBit(i, 0) }

// Contains reports whether i is a member of the set.
func (s BitSet) Contains(i int) bool { return s.b.Bit(i) != 0 }

// Size returns the number of elements in the set.
func (s BitSet) Size() int { return s.b.OnesCount() }

// Empty reports whether the set has no elements.
func (s BitSet) Empty() bool { return s.b.AllZeros() }

// First returns the smallest element in the set, or -1 if the set is empty.
func (s BitSet) First() int { return s.b.OneFrom(0) }

// NextAfter returns the smallest element strictly greater than i, or -1 if
// none exists.
func (s BitSet) NextAfter(i int) int { return s.b.OneFrom(i + 1) }

// Iterate calls f for every element of s in ascending order, stopping early
// if f returns false. Iterate itself returns false iff f returned false for
// some element.
func (s BitSet) Iterate(f func(i int) bool) bool {
	return s.b.IterateOnes(f)
}

// Slice returns the elements of s in ascending order.
func (s BitSet) Slice() []int {
	var out []int
	s.Iterate(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Clone returns an independent copy of s.
func (s BitSet) Clone() BitSet {
	c := NewBitSet(s.b.Num)
	c.b.Set(s.b)
	return c
}

// Union returns the union of s and t. Both must share the same capacity.
func (s BitSet) Union(t BitSet) BitSet {
	u := NewBitSet(s.b.Num)
	u.b.Or(s.b, t.b)
	return u
}

// Intersect returns the intersection of s and t.
func (s BitSet) Intersect(t BitSet) BitSet {
	u := NewBitSet(s.b.Num)
	u.b.And(s.b, t.b)
	return u
}

// Difference returns the elements of s that are not in t.
func (s BitSet) Difference(t BitSet) BitSet {
	u := NewBitSet(s.b.Num)
	u.b.AndNot(s.b, t.b)
	return u
}

// Complement returns the elements 0..n-1 not in s, where n is s's capacity.
// Built from SetAll rather than Not so that no bit past the capacity is ever
// set in the last word.
func (s BitSet) Complement() BitSet {
	u := Full(s.b.Num)
	u.b.AndNot(u.b, s.b)
	return u
}

// Equal reports whether s and t have the same elements.
func (s BitSet) Equal(t BitSet) bool { return s.b.Equal(t.b) }

// Subset reports whether every element of s is also in t.
func (s BitSet) Subset(t BitSet) bool {
	d := NewBitSet(s.b.Num)
	d.b.AndNot(s.b, t.b)
	return d.b.AllZeros()
}
