// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package heuristic

import "github.com/frank-number/filter"

// circuitOrientation assigns each vertex on a circuit (an F/M-alternating
// cycle, after the between-cycle bridges are suppressed) its outgoing arc:
// co[v] is either f[v] or m[v], or unset if the circuit has not been
// oriented yet.
type circuitOrientation []frank.NI

func newCircuitOrientation(n int) circuitOrientation {
	co := make(circuitOrientation, n)
	for i := range co {
		co[i] = unset
	}
	return co
}

// orientFrom walks the circuit containing start, alternating between
// matching and F edges starting with the step takeMaximalMatching
// indicates, recording each vertex's chosen outgoing arc in co.
func orientFrom(co circuitOrientation, f, m matching, start frank.NI, takeMaximalMatching bool) {
	current := start
	for {
		var next frank.NI
		if takeMaximalMatching {
			next = m[current]
		} else {
			next = f[current]
		}
		co[current] = next
		current = next
		takeMaximalMatching = !takeMaximalMatching
		if current == start {
			return
		}
	}
}

// consistent orients the circuits containing u and v, if not already
// oriented, and reports whether the two endpoints of one suppressed bridge
// end up with mutually consistent alternating orientations: one follows F
// at its endpoint iff the other follows the matching at its endpoint.
func consistent(co circuitOrientation, f, m matching, u, v frank.NI) bool {
	if co[u] == unset {
		takeMaximalMatching := co[v] == f[v]
		orientFrom(co, f, m, u, takeMaximalMatching)
	}
	if co[v] == unset {
		takeMaximalMatching := co[u] == f[u]
		orientFrom(co, f, m, v, takeMaximalMatching)
	}
	return (co[u] == f[u]) == (co[v] == m[v])
}
