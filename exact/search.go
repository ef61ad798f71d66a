// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Package exact implements the exhaustive decision procedure for Frank
// number 2: enumerate strong orientations of a cubic graph (Enumerate),
// and for each, decide whether a complementary strong orientation exists,
// either via constraint propagation (Solve) or brute-force pairwise
// comparison (Pool).
package exact

import "github.com/frank-number/filter"

// Shard restricts Enumerate to the strongly connected candidates whose
// global sequential index is congruent to Res modulo Mod, mirroring the
// driver's external res/mod sharding but applied to the stream of oriented
// candidates within a single graph (the "singleGraph" sharding mode).
type Shard struct {
	Enabled  bool
	Res, Mod int
}

// keep reports whether the candidate with the given 0-based global index
// should be processed under this shard.
func (s Shard) keep(index int) bool {
	if !s.Enabled {
		return true
	}
	return index%s.Mod == s.Res
}

// Handler is called for every strongly connected candidate orientation
// that survives the local necessary condition (every vertex has at least
// one deletable incident arc). d is the oriented digraph and s is its
// deletable-arc set. Handler returns true if this candidate resolves the
// graph's Frank number to 2, which aborts the enumeration immediately.
type Handler func(d frank.Digraph, s frank.BitSet) bool

// Enumerate visits every strong orientation of g in lexicographic edge
// order, fixing the direction of g.FirstEdge() to quotient out the
// reverse-everywhere symmetry (reversing every arc of a strong orientation
// yields another strong orientation with the same deletable-arc set). A
// degree prune discards any partial orientation that would push a
// vertex's out-degree or in-degree past 2. Enumerate returns true as soon
// as handle returns true for some candidate; otherwise it returns false
// once every orientation (or shard-selected subset) has been tried.
func Enumerate(g *frank.Graph, shard Shard, stats *frank.Stats, handle Handler) bool {
	if stats == nil {
		stats = &frank.Stats{}
	}
	edges := g.EdgeOrder()
	d := frank.NewDigraph(g.Order())
	globalIndex := 0
	found := false

	var tryArc func(i int, u, v frank.NI) bool
	var step func(i int) bool

	tryArc = func(i int, u, v frank.NI) bool {
		if d.OutDegree(u) >= 2 || d.InDegree(v) >= 2 {
			return false
		}
		d.AddArc(u, v)
		ok := step(i + 1)
		d.RemoveArc(u, v)
		return ok
	}

	step = func(i int) bool {
		if i == len(edges) {
			stats.OrientationsGenerated++
			if !d.StronglyConnected() {
				return false
			}
			stats.StronglyConnected++
			s := frank.DeletableArcs(g, d)
			if !passesNecessaryCondition(g, s) {
				return false
			}
			stats.SurvivedNecessaryCheck++
			idx := globalIndex
			globalIndex++
			if !shard.keep(idx) {
				return false
			}
			if handle(d, s) {
				found = true
				return true
			}
			return false
		}
		u, v := edges[i][0], edges[i][1]
		if i == 0 {
			// canonical first edge: direction fixed
			return tryArc(i, u, v)
		}
		if tryArc(i, u, v) {
			return true
		}
		return tryArc(i, v, u)
	}

	step(0)
	return found
}

// passesNecessaryCondition reports false if some vertex has all three
// incident edges non-deletable, in which case no complementary
// orientation can possibly cover them and the candidate can be discarded
// without invoking the solver or pool at all.
func passesNecessaryCondition(g *frank.Graph, s frank.BitSet) bool {
	for v := 0; v < g.Order(); v++ {
		anyDeletable := false
		g.Adj[v].Iterate(func(wi int) bool {
			if s.Contains(g.EdgeIndex(frank.NI(v), frank.NI(wi))) {
				anyDeletable = true
			}
			return !anyDeletable
		})
		if !anyDeletable {
			return false
		}
	}
	return true
}
