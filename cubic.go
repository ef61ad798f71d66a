// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

import "fmt"

// Graph is an undirected cubic graph: every vertex has exactly three
// neighbors, stored as a vertex bitset, plus a bijective numbering of
// edges used to index arc bitsets.
type Graph struct {
	Adj []BitSet // Adj[v] is the neighbor set of v; |Adj[v]| == 3
	idx [][]int  // idx[u][v] == idx[v][u], the edge number of {u,v}, or -1
	m   int      // number of edges, == 3*N/2
}

// NewGraph builds a Graph from an adjacency list, assigning edge numbers by
// scanning (u, v) pairs with u < v in row-major order.
//
// NewGraph does not itself verify cubicity; callers check that with
// IsCubic before relying on the degree-3 invariant.
func NewGraph(adj [][]NI) (*Graph, error) {
	// A cubic graph on n vertices has 3n/2 edges, and the edge numbers
	// must fit the same fixed-width bitset as the vertices, so the
	// effective ceiling is 2*MaxN/3, not MaxN itself.
	n := len(adj)
	if n > 2*MaxN/3 {
		return nil, fmt.Errorf("frank: graph has %d vertices, exceeds the %d supported", n, 2*MaxN/3)
	}
	g := &Graph{
		Adj: make([]BitSet, n),
		idx: make([][]int, n),
	}
	for v := 0; v < n; v++ {
		g.Adj[v] = NewBitSet(n)
		g.idx[v] = make([]int, n)
		for u := range g.idx[v] {
			g.idx[v][u] = -1
		}
	}
	for u, nbrs := range adj {
		for _, v := range nbrs {
			g.Adj[u].Add(int(v))
		}
	}
	next := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.Adj[u].Contains(v) {
				g.idx[u][v] = next
				g.idx[v][u] = next
				next++
			}
		}
	}
	g.m = next
	return g, nil
}

// Order returns the vertex count.
func (g *Graph) Order() int { return len(g.Adj) }

// Size returns the edge count.
func (g *Graph) Size() int { return g.m }

// EdgeIndex returns the edge number of {u, v}, or -1 if u and v are not
// adjacent.
func (g *Graph) EdgeIndex(u, v NI) int { return g.idx[u][v] }

// IsCubic reports whether every vertex has degree exactly 3 and the graph
// has no self-loops.
func (g *Graph) IsCubic() bool {
	for v, a := range g.Adj {
		if a.Contains(v) {
			return false
		}
		if a.Size() != 3 {
			return false
		}
	}
	return true
}

// FirstEdge returns the canonical first edge (0, min(Adj[0])), used by both
// the orientation search and the complementary-orientation solver to fix one
// edge's direction and quotient out the reverse-everything symmetry.
func (g *Graph) FirstEdge() (NI, NI) {
	return 0, NI(g.Adj[0].First())
}

// EdgeOrder returns every edge (u, v) with u < v, in the next-after
// enumeration order the orientation search and solver both depend on.
func (g *Graph) EdgeOrder() [][2]NI {
	edges := make([][2]NI, 0, g.m)
	for u := 0; u < g.Order(); u++ {
		for v := g.Adj[u].NextAfter(u); v >= 0; v = g.Adj[u].NextAfter(v) {
			edges = append(edges, [2]NI{NI(u), NI(v)})
		}
	}
	return edges
}
