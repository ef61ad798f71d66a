// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package heuristic

import "github.com/frank-number/filter"

// cycle records one cycle of the 2-factor G-F: its vertex set, for fast
// membership tests, and its vertices in traversal order, for the
// index arithmetic the odd-cycle matching and rematch steps need.
type cycle struct {
	elements frank.BitSet
	order    []frank.NI
}

func (c cycle) indexOf(v frank.NI) int {
	for i, w := range c.order {
		if w == v {
			return i
		}
	}
	return -1
}

// firstNeighborExcluding returns the unique neighbor of v in g other than
// previous and fPartner. A cubic vertex has exactly one such neighbor once
// its matched partner and its incoming 2-factor edge are excluded; this is
// the single step that walks a 2-factor cycle one edge at a time.
func firstNeighborExcluding(g *frank.Graph, v, previous, fPartner frank.NI) frank.NI {
	result := unset
	g.Adj[v].Iterate(func(wi int) bool {
		w := frank.NI(wi)
		if w == previous || w == fPartner {
			return true
		}
		result = w
		return false
	})
	return result
}

// decomposeTwoFactor walks every cycle of G-F, recording parity and, for
// each cycle, a maximal matching of its edges into m (perfect on even
// cycles, one edge short on odd cycles). It reports the (at most two) odd
// cycles found and whether exactly two exist; as soon as a third odd cycle
// is seen it stops early, since containsTwoOddCycles does the same.
func decomposeTwoFactor(g *frank.Graph, f matching) ([2]cycle, matching, bool) {
	n := g.Order()
	m := newMatching(n)
	var odd [2]cycle
	numOdd := 0
	unchecked := frank.Full(n)

	for start := unchecked.First(); start >= 0; start = unchecked.First() {
		element := frank.NI(start)
		current := element
		previous := unset
		isOdd := false
		elements := frank.NewBitSet(n)
		var order []frank.NI
		for {
			unchecked.Remove(int(current))
			elements.Add(int(current))
			order = append(order, current)
			next := firstNeighborExcluding(g, current, previous, f[current])
			if m[current] == unset && m[next] == unset {
				m.set(current, next)
			}
			previous = current
			current = next
			isOdd = !isOdd
			if current == element {
				break
			}
		}
		if isOdd {
			if numOdd < 2 {
				odd[numOdd] = cycle{elements: elements, order: order}
			}
			numOdd++
			if numOdd > 2 {
				return odd, m, false
			}
		}
	}
	return odd, m, numOdd == 2
}

// addOddCycleMatching extends m with a maximal matching of
// (odd[0]\{x1}) ∪ (odd[1]\{x2}), where x1, x2 sit at the given indices
// within each cycle's traversal order.
func addOddCycleMatching(odd [2]cycle, indexOfX1, indexOfX2 int, m matching) {
	completeCycleMatching(odd[0], indexOfX1, m)
	completeCycleMatching(odd[1], indexOfX2, m)
}

func completeCycleMatching(c cycle, start int, m matching) {
	n := len(c.order)
	current := start
	add := false
	for {
		next := (current + 1) % n
		if add {
			m.set(c.order[next], c.order[current])
		}
		add = !add
		current = next
		if current == start {
			break
		}
	}
}

// rematch repairs m on the even cycle containing y1 and y2 so that it is a
// maximal matching of that cycle minus {y1, y2}, then matches y1 to y2
// directly. Used only by Configuration B, where the even cycle carrying
// the two bridges to the odd cycles needs its matching adjusted around the
// two vertices the bridges attach to.
func rematch(g *frank.Graph, f, m matching, y1, y2 frank.NI) {
	previous := y2
	current := y1
	add := false
	for {
		next := firstNeighborExcluding(g, current, previous, f[current])
		if add {
			m.set(current, next)
		}
		previous = current
		current = next
		add = !add
		if current == y2 {
			break
		}
	}
	m.set(y1, y2)
}
