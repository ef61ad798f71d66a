// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package heuristic

import "github.com/frank-number/filter"

func cloneAdjacency(g *frank.Graph) []frank.BitSet {
	adj := make([]frank.BitSet, g.Order())
	for v, a := range g.Adj {
		adj[v] = a.Clone()
	}
	return adj
}

func removeEdge(adj []frank.BitSet, u, v frank.NI) {
	adj[u].Remove(int(v))
	adj[v].Remove(int(u))
}

func addEdge(adj []frank.BitSet, u, v frank.NI) {
	adj[u].Add(int(v))
	adj[v].Add(int(u))
}

func firstRemainingNeighbor(adj []frank.BitSet, v frank.NI) frank.NI {
	i := adj[v].First()
	if i < 0 {
		return unset
	}
	return frank.NI(i)
}

// isCyclicallyConnected reports whether at most one connected component of
// adj contains a cycle (equivalently, all but one component is a tree).
func isCyclicallyConnected(adj []frank.BitSet) bool {
	n := len(adj)
	unchecked := frank.Full(n)
	componentsWithCycle := 0
	for {
		start := unchecked.First()
		if start < 0 {
			break
		}
		component := frank.NewBitSet(n)
		cycleFound := false
		dfsCyclic(adj, &component, &unchecked, frank.NI(start), unset, &cycleFound)
		if cycleFound {
			componentsWithCycle++
			if componentsWithCycle >= 2 {
				return false
			}
		}
	}
	return true
}

func dfsCyclic(adj []frank.BitSet, component, unchecked *frank.BitSet, v, parent frank.NI, cycleFound *bool) {
	if component.Contains(int(v)) {
		*cycleFound = true
		return
	}
	unchecked.Remove(int(v))
	component.Add(int(v))
	neighbors := adj[v].Clone()
	if parent != unset {
		neighbors.Remove(int(parent))
	}
	neighbors.Iterate(func(wi int) bool {
		dfsCyclic(adj, component, unchecked, frank.NI(wi), v, cycleFound)
		return true
	})
}

// edgeIsStrong2Edge checks the sufficient condition used in place of the
// full strong-2-edge definition: the edge {endpoint1, endpoint2} is not
// part of any cyclic 3-edge-cut that also removes two other oriented
// circuit edges. Equivalently, removing the edge plus every pair of
// distinct oriented circuit arcs and checking cyclic connectivity finds no
// such cut.
func edgeIsStrong2Edge(adj []frank.BitSet, endpoint1, endpoint2 frank.NI, co circuitOrientation) bool {
	hasCut := false
	removeEdge(adj, endpoint1, endpoint2)
	n := len(adj)
loop:
	for i := 0; i < n; i++ {
		if co[i] == unset {
			continue
		}
		removeEdge(adj, frank.NI(i), co[i])
		for j := i + 1; j < n; j++ {
			if co[j] == unset {
				continue
			}
			removeEdge(adj, frank.NI(j), co[j])
			if !isCyclicallyConnected(adj) {
				hasCut = true
			}
			addEdge(adj, frank.NI(j), co[j])
			if hasCut {
				break
			}
		}
		addEdge(adj, frank.NI(i), co[i])
		if hasCut {
			break loop
		}
	}
	addEdge(adj, endpoint1, endpoint2)
	return !hasCut
}

// suppressedEdgesAreDeletable checks that every bridge edge between the two
// odd cycles is a strong 2-edge, testing one arbitrary circuit edge at each
// endpoint of each bridge.
func suppressedEdgesAreDeletable(adj []frank.BitSet, co circuitOrientation, bridges [][2]frank.NI) bool {
	for _, e := range bridges {
		removeEdge(adj, e[0], e[1])
	}
	ok := true
loop:
	for _, e := range bridges {
		if !edgeIsStrong2Edge(adj, e[0], firstRemainingNeighbor(adj, e[0]), co) {
			ok = false
			break loop
		}
		if !edgeIsStrong2Edge(adj, e[1], firstRemainingNeighbor(adj, e[1]), co) {
			ok = false
			break loop
		}
	}
	for _, e := range bridges {
		addEdge(adj, e[0], e[1])
	}
	return ok
}
