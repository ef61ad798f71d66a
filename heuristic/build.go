// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package heuristic

import "github.com/frank-number/filter"

// twoFactorNeighbors returns v's two neighbors in the 2-factor G-F (the
// two neighbors other than its F-partner), in ascending order.
func twoFactorNeighbors(g *frank.Graph, v, fPartner frank.NI) [2]frank.NI {
	var out [2]frank.NI
	i := 0
	g.Adj[v].Iterate(func(wi int) bool {
		w := frank.NI(wi)
		if w == fPartner {
			return true
		}
		out[i] = w
		i++
		return i < 2
	})
	return out
}

// buildOrientations constructs the two concrete complementary strong
// orientations a successful match certifies. Every vertex's three edges
// are oriented in two passes: first its circuit edge (co[v]) in both
// orientations (as mutual reverses), then the two 2-factor cycle edges,
// walking each 2-factor cycle once starting from the bridge endpoints
// (every other vertex is reached by following the cycle from there) and
// finally from whatever 2-factor cycles remain untouched (the ones with
// no bridge endpoint, i.e. the even cycles unrelated to the two odd
// cycles).
func buildOrientations(g *frank.Graph, mt match) (frank.Digraph, frank.Digraph) {
	n := g.Order()
	f, m, co, bridges := mt.f, mt.m, mt.co, mt.bridges
	d1 := frank.NewDigraph(n)
	d2 := frank.NewDigraph(n)

	endpoints := frank.NewBitSet(n)
	for _, e := range bridges {
		d1.AddArc(e[0], e[1])
		d2.AddArc(e[1], e[0])
		endpoints.Add(int(e[0]))
		endpoints.Add(int(e[1]))
	}

	for i := 0; i < n; i++ {
		v := frank.NI(i)
		if endpoints.Contains(i) {
			continue
		}
		if co[v] == unset {
			orientFrom(co, f, m, v, true)
		}
		d1.AddArc(co[v], v)
		d2.AddArc(v, co[v])
	}

	unchecked := frank.Full(n)
	for _, e := range bridges {
		for _, v := range e {
			if unchecked.Contains(int(v)) {
				orientTwoFactorCycle(g, f, co, v, &unchecked, &d1, &d2)
			}
		}
	}
	for {
		start := unchecked.First()
		if start < 0 {
			break
		}
		orientTwoFactorCycle(g, f, co, frank.NI(start), &unchecked, &d1, &d2)
	}

	return d1, d2
}

// orientTwoFactorCycle walks the 2-factor cycle containing start once,
// deciding each edge's direction in orientation1/orientation2. A 2-factor
// edge that coincides with a circuit arc already assigned by co is
// oriented to agree with co in orientation2 (and is cancelled from the
// generic both-ways assignment); every other 2-factor edge is oriented
// the same way in both orientations, since the two orientations only
// differ on the circuit arcs and the bridges.
func orientTwoFactorCycle(g *frank.Graph, f matching, co circuitOrientation, start frank.NI, unchecked *frank.BitSet, d1, d2 *frank.Digraph) {
	nbrs := twoFactorNeighbors(g, start, f[start])
	previous := nbrs[0]
	if co[previous] == unset || co[previous] != f[previous] {
		previous = nbrs[1]
	}

	current := start
	for {
		unchecked.Remove(int(current))
		next := firstNeighborExcluding(g, current, previous, f[current])
		switch {
		case co[next] == current:
			d2.AddArc(current, next)
			d2.RemoveArc(next, current)
		case co[current] != next && co[next] != current:
			d1.AddArc(current, next)
			d2.AddArc(current, next)
		}
		previous = current
		current = next
		if current == start {
			return
		}
	}
}
