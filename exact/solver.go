// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package exact

import "github.com/frank-number/filter"

// Solve decides whether a strong orientation D' of g exists such that
// δ(D') ∪ s equals every edge of g, i.e. every edge not in s is deletable
// in D'. It searches by constraint propagation: a canonical first arc is
// fixed (same edge and, in principle, either direction — the reverse
// yields the reverse-everywhere twin with an identical deletable set), and
// the remaining edges are forced one at a time with backtracking.
//
// Two of the three local rules that characterize a valid D' are enforced
// as hard propagation during the search:
//
//   - R1 (degree split): every vertex ends with out-degree/in-degree
//     {2,1} or {1,2}. Enforced both as an immediate bound (force refuses
//     to push a vertex's out- or in-degree to 3) and as a propagation (once
//     a vertex's out- or in-degree reaches 2 with the other at 0, its
//     remaining incident edge is forced to complete the split).
//   - R2 (deletable-pair consistency): if two edges incident to the same
//     vertex both belong to s, they must be oriented oppositely at that
//     vertex (one in, one out). Enforced as an immediate consistency check
//     on commit.
//
// R3, which characterizes exactly when a non-s edge is forced to be
// deletable in D', is not separately propagated: R1-R3 are necessary but
// not a complete characterization of deletability, so every full
// assignment is re-checked directly against
// δ(D') ∪ s = E(G) at the leaf regardless. Folding R3 only into that leaf
// check (rather than an additional speculative forcing step) keeps the
// search unconditionally sound: propagation here can only fail branches
// that truly cannot extend to a valid D', never ones that can.
func Solve(g *frank.Graph, s frank.BitSet) (frank.Digraph, bool) {
	edges := g.EdgeOrder()
	d := frank.NewDigraph(g.Order())

	var search func(i int) bool
	search = func(i int) bool {
		if i == len(edges) {
			if d.Arcs != g.Size() {
				return false
			}
			if !d.StronglyConnected() {
				return false
			}
			cover := frank.DeletableArcs(g, d).Union(s)
			return cover.Size() == g.Size()
		}
		u, v := edges[i][0], edges[i][1]
		if i == 0 {
			log, ok := force(g, &d, s, u, v)
			if ok && search(i+1) {
				return true
			}
			d.RollbackAll(log)
			return false
		}
		if log, ok := force(g, &d, s, u, v); ok {
			if search(i + 1) {
				return true
			}
			d.RollbackAll(log)
		}
		if log, ok := force(g, &d, s, v, u); ok {
			if search(i + 1) {
				return true
			}
			d.RollbackAll(log)
		}
		return false
	}

	if search(0) {
		return d, true
	}
	return frank.Digraph{}, false
}

// force commits u→v and whatever consequences R1/R2 propagation demands,
// returning the log of arcs committed (for rollback) and whether the
// commit succeeded without contradiction.
func force(g *frank.Graph, d *frank.Digraph, s frank.BitSet, u, v frank.NI) ([]frank.Undo, bool) {
	if d.HasArc(u, v) {
		return nil, true
	}
	if d.HasArc(v, u) {
		return nil, false
	}
	if d.OutDegree(u) >= 2 || d.InDegree(v) >= 2 {
		return nil, false
	}
	var log []frank.Undo
	log = append(log, d.Do(u, v, true))

	if !r2Consistent(g, *d, s, u) || !r2Consistent(g, *d, s, v) {
		d.RollbackAll(log)
		return nil, false
	}

	for _, consequence := range [...]frank.NI{u, v} {
		if more, ok := completeSplit(g, d, s, consequence); ok {
			log = append(log, more...)
		} else {
			d.RollbackAll(log)
			return nil, false
		}
	}
	return log, true
}

// completeSplit forces the remaining unassigned incident edge of v, if
// exactly one remains and v's current out/in degrees already require a
// specific direction to reach a valid {2,1} split.
func completeSplit(g *frank.Graph, d *frank.Digraph, s frank.BitSet, v frank.NI) ([]frank.Undo, bool) {
	out, in := d.OutDegree(v), d.InDegree(v)
	if out+in != 2 {
		return nil, true // nothing forced yet, or already fully assigned
	}
	var remaining frank.NI = -1
	g.Adj[v].Iterate(func(wi int) bool {
		w := frank.NI(wi)
		if !d.HasArc(v, w) && !d.HasArc(w, v) {
			remaining = w
		}
		return true
	})
	if remaining < 0 {
		return nil, true
	}
	switch {
	case out == 2:
		return force(g, d, s, remaining, v) // force incoming: remaining -> v
	case in == 2:
		return force(g, d, s, v, remaining) // force outgoing: v -> remaining
	}
	return nil, true
}

// r2Consistent checks rule R2 at vertex v: if two of v's incident edges
// are both in s and both already oriented, they must point oppositely at
// v (not both away from v, not both toward v).
func r2Consistent(g *frank.Graph, d frank.Digraph, s frank.BitSet, v frank.NI) bool {
	var out, in int
	n := 0
	g.Adj[v].Iterate(func(wi int) bool {
		w := frank.NI(wi)
		if !s.Contains(g.EdgeIndex(v, w)) {
			return true
		}
		if d.HasArc(v, w) {
			out++
			n++
		} else if d.HasArc(w, v) {
			in++
			n++
		}
		return true
	})
	return n < 2 || (out >= 1 && in >= 1)
}
