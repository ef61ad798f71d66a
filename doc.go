// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Package frank implements the combinatorial substrate used to decide
// whether a cubic, 3-edge-connected graph has Frank number 2: the
// smallest k such that k strong orientations of the graph have
// deletable-arc sets whose union is every edge.
//
// The package provides the leaf components: a fixed-capacity vertex/arc
// bitset (BitSet), a digraph representation with transactional arc
// add/remove (Digraph), a Kosaraju-style strong-connectivity test
// (StronglyConnected), a cubic graph with an edge numbering (Graph), and
// the deletable-arc engine (DeletableArcs). The exhaustive search and
// heuristic decision procedures built on top of these live in the
// sibling packages exact and heuristic.
package frank
