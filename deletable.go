// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

// DeletableArcs returns the arc-bitset, indexed by edge number, of every
// arc in d whose reversal leaves d strongly connected. d must already be
// strongly connected; for each arc (u→v), the arc is removed, a directed
// u→v path is searched for in the mutated digraph, and the arc restored.
// A u→v path after removing u→v is exactly the condition for u→v's
// reversal to preserve strong connectivity: the rest of the digraph still
// gets from u to v some other way, and reversing u→v to v→u only removes
// the ability to go u→v directly, which that other path supplies.
func DeletableArcs(g *Graph, d Digraph) BitSet {
	s := NewBitSet(g.Size())
	for u := 0; u < d.Order(); u++ {
		// Snapshot before mutating: RemoveArc/AddArc below touch
		// d.Out[u] in place, and a live bitset must not be iterated
		// while it changes out from under the iterator.
		for _, v := range d.Out[NI(u)].Slice() {
			d.RemoveArc(NI(u), NI(v))
			if d.ContainsDirectedPath(NI(u), NI(v)) {
				s.Add(g.EdgeIndex(NI(u), NI(v)))
			}
			d.AddArc(NI(u), NI(v))
		}
	}
	return s
}
