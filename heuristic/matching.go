// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Package heuristic implements the oddness-2 sufficient condition: for
// a cubic bridgeless graph G and a perfect matching F, G-F is a 2-factor
// (disjoint union of cycles). When exactly two of those cycles are odd and
// a cycle-coherence property holds across them, two concrete complementary
// strong orientations of G exist and can be produced directly, without the
// exhaustive search the exact package performs.
package heuristic

import "github.com/frank-number/filter"

// unset is the "no partner yet" sentinel used throughout this package for
// both F (the perfect matching under construction) and M (the maximal
// matching of the 2-factor), mirroring the original's use of -1.
const unset = frank.NI(-1)

// matching is a symmetric partial matching: matching[v] is v's partner, or
// unset.
type matching []frank.NI

func newMatching(n int) matching {
	m := make(matching, n)
	for i := range m {
		m[i] = unset
	}
	return m
}

func (m matching) set(u, v frank.NI) {
	m[u] = v
	m[v] = u
}

func (m matching) clear(u, v frank.NI) {
	m[u] = unset
	m[v] = unset
}

// enumeratePerfectMatchings finds every perfect matching F of g and, for
// each, calls test. It stops and returns true as soon as test returns true
// (test is expected to fully examine one matching, the way
// hasSufficientCondition does for each completed F in the original).
func enumeratePerfectMatchings(g *frank.Graph, test func(f matching) bool) bool {
	f := newMatching(g.Order())
	remaining := frank.Full(g.Order())
	return extendMatching(g, f, remaining, test)
}

func extendMatching(g *frank.Graph, f matching, remaining frank.BitSet, test func(f matching) bool) bool {
	v := remaining.First()
	if v < 0 {
		return test(f)
	}
	nv := frank.NI(v)
	candidates := g.Adj[nv].Intersect(remaining)
	found := false
	candidates.Iterate(func(wi int) bool {
		w := frank.NI(wi)
		f.set(nv, w)
		next := remaining.Clone()
		next.Remove(int(nv))
		next.Remove(int(w))
		if extendMatching(g, f, next, test) {
			found = true
			return false
		}
		f.clear(nv, w)
		return true
	})
	return found
}
