// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package exact

import "github.com/frank-number/filter"

// Result carries the two complementary orientations found, when Decide
// succeeds, for callers that want to print or re-verify them (the driver's
// -p flag).
type Result struct {
	First, Second frank.Digraph
}

// Decide runs the full exact procedure for whether g has Frank number 2:
// it enumerates strong orientations (Enumerate) and, for every survivor,
// checks for a complementary orientation either via constraint-propagation
// search (Solve, the default) or the brute-force pairwise pool (Pool,
// when brute is set). It returns as soon as a complementary pair is
// found, or after exhausting the (possibly sharded) candidate stream.
func Decide(g *frank.Graph, brute bool, shard Shard, stats *frank.Stats) (bool, Result) {
	if stats == nil {
		stats = &frank.Stats{}
	}
	var result Result
	var pool *Pool
	if brute {
		pool = NewPool(frank.Full(g.Size()))
	}

	found := Enumerate(g, shard, stats, func(d frank.Digraph, s frank.BitSet) bool {
		if brute {
			if pool.Insert(s, stats) != 2 {
				return false
			}
			// The pool's own subset/superset/union-equals-E(G) check at
			// Insert is the complete brute-force verdict: a return of 2 already
			// certifies that some earlier stored set complements s, so
			// Decide reports success here regardless of what Solve does.
			// The pool does not retain which orientation produced that
			// earlier set, though, so Result.Second (needed only for -p)
			// is recovered on a best-effort basis by running the
			// propagation solver against this same s; if that fails, the
			// graph is still reported as Frank number 2, just without a
			// printable/verifiable second orientation.
			// Clone: Enumerate unwinds d's arcs as its recursion returns,
			// so the handler's d does not survive past this callback.
			result.First = d.Clone()
			if d2, ok := Solve(g, s); ok {
				result.Second = d2
			}
			return true
		}
		d2, ok := Solve(g, s)
		if !ok {
			return false
		}
		result = Result{First: d.Clone(), Second: d2}
		return true
	})
	return found, result
}
