// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package heuristic

import "github.com/frank-number/filter"

// match bundles the state a successful configuration leaves behind: the
// perfect matching F, the maximal matching M of its 2-factor (possibly
// extended onto the odd cycles and rematched onto the even cycle), the
// circuit orientation, and the bridge edges suppressed between the two odd
// cycles (one edge for Configuration A, two for Configuration B).
type match struct {
	f       matching
	m       matching
	co      circuitOrientation
	bridges [][2]frank.NI
}

// Result carries what Try found: the suppressed bridge edges, and — only
// when Try was asked to build them — the two concrete complementary strong
// orientations.
type Result struct {
	Bridges       [][2]frank.NI
	First, Second frank.Digraph
}

// Try runs the oddness-2 heuristic on g: it enumerates perfect matchings F
// and, for each, checks whether G-F has exactly two odd cycles joined by
// one of the two supported bridge configurations with a coherent circuit
// orientation and strong suppressed bridges. It returns on the first
// success.
//
// When build is true, Try also constructs the two concrete complementary
// strong orientations and verifies them directly (strongly connected,
// deletable sets covering E(G)) before returning success — any failure of
// that verification is a bug in this package, not a property of the input
// graph, and panics rather than returning false.
func Try(g *frank.Graph, build bool) (bool, Result) {
	var found match
	ok := enumeratePerfectMatchings(g, func(f matching) bool {
		m, success := tryMatching(g, f)
		if success {
			found = m
		}
		return success
	})
	if !ok {
		return false, Result{}
	}
	result := Result{Bridges: found.bridges}
	if build {
		d1, d2 := buildOrientations(g, found)
		if !d1.StronglyConnected() || !d2.StronglyConnected() {
			panic("heuristic: orientations from oddness-2 heuristic are not strongly connected")
		}
		s1 := frank.DeletableArcs(g, d1)
		s2 := frank.DeletableArcs(g, d2)
		if s1.Union(s2).Size() != g.Size() {
			panic("heuristic: orientations from oddness-2 heuristic are not complementary")
		}
		result.First, result.Second = d1, d2
	}
	return true, result
}

// tryMatching checks both configurations for one completed perfect
// matching f, mutating (and reusing across attempts within this call) the
// maximal matching m that decomposeTwoFactor builds — exactly as the
// original does, since each odd-cycle-matching extension overwrites every
// vertex of the two odd cycles it touches except the two anchor vertices it
// starts from, regardless of what an earlier, failed attempt left there.
func tryMatching(g *frank.Graph, f matching) (match, bool) {
	odd, m, ok := decomposeTwoFactor(g, f)
	if !ok {
		return match{}, false
	}

	var result match
	found := false
	odd[0].elements.Iterate(func(ui int) bool {
		u := frank.NI(ui)
		v := f[u]

		if odd[1].elements.Contains(int(v)) {
			// Configuration A: the F-edge u-v itself is the single
			// bridge between the two odd cycles.
			if tryConfigurationA(g, f, m, odd, u, v, &result) {
				found = true
				return false
			}
			return true
		}

		if !odd[0].elements.Contains(int(v)) {
			// v = F[u] lies on neither odd cycle: u's matching partner
			// is the first inner vertex of a length-3 path to the second
			// odd cycle, Configuration B.
			if tryConfigurationB(g, f, m, odd, u, v, &result) {
				found = true
				return false
			}
		}
		return true
	})
	return result, found
}

func tryConfigurationA(g *frank.Graph, f, m matching, odd [2]cycle, u, v frank.NI, result *match) bool {
	idx1 := odd[0].indexOf(u)
	idx2 := odd[1].indexOf(v)
	addOddCycleMatching(odd, idx1, idx2, m)

	n1, n2 := len(odd[0].order), len(odd[1].order)
	u1 := odd[0].order[(idx1+1)%n1]
	u2 := odd[1].order[(idx2+1)%n2]
	v1 := odd[0].order[(idx1-1+n1)%n1]
	v2 := odd[1].order[(idx2-1+n2)%n2]

	co := newCircuitOrientation(g.Order())
	if !consistent(co, f, m, u1, v1) || !consistent(co, f, m, u2, v2) {
		return false
	}

	bridges := [][2]frank.NI{{u, v}}
	adj := cloneAdjacency(g)
	if !suppressedEdgesAreDeletable(adj, co, bridges) {
		return false
	}
	*result = match{f: f, m: m, co: co, bridges: bridges}
	return true
}

func tryConfigurationB(g *frank.Graph, f, m matching, odd [2]cycle, u, nbrOfU frank.NI, result *match) bool {
	found := false
	g.Adj[nbrOfU].Iterate(func(nbrOfVi int) bool {
		nbrOfV := frank.NI(nbrOfVi)
		if nbrOfV == u {
			return true
		}
		v := unset
		g.Adj[nbrOfV].Iterate(func(wi int) bool {
			w := frank.NI(wi)
			if odd[1].elements.Contains(int(w)) {
				v = w
				return false
			}
			return true
		})
		if v == unset {
			return true
		}

		idx1 := odd[0].indexOf(u)
		idx2 := odd[1].indexOf(v)
		addOddCycleMatching(odd, idx1, idx2, m)

		n1, n2 := len(odd[0].order), len(odd[1].order)
		u1 := odd[0].order[(idx1+1)%n1]
		u2 := odd[1].order[(idx2+1)%n2]
		v1 := odd[0].order[(idx1-1+n1)%n1]
		v2 := odd[1].order[(idx2-1+n2)%n2]
		w1 := firstNeighborExcluding(g, nbrOfU, nbrOfV, f[nbrOfU])
		w2 := firstNeighborExcluding(g, nbrOfV, nbrOfU, f[nbrOfV])

		co := newCircuitOrientation(g.Order())
		if m[nbrOfU] != nbrOfV {
			rematch(g, f, m, nbrOfU, nbrOfV)
		}
		if !consistent(co, f, m, u1, v1) || !consistent(co, f, m, u2, v2) || !consistent(co, f, m, w1, w2) {
			return true
		}

		bridges := [][2]frank.NI{{u, nbrOfU}, {nbrOfV, v}}
		adj := cloneAdjacency(g)
		if !suppressedEdgesAreDeletable(adj, co, bridges) {
			return true
		}
		*result = match{f: f, m: m, co: co, bridges: bridges}
		found = true
		return false
	})
	return found
}
