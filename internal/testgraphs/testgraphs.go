// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Package testgraphs provides small named cubic graphs, shared by the
// tests of every package in this module.
package testgraphs

import "github.com/frank-number/filter"

// K4 is the complete graph on 4 vertices: cubic, 3-edge-connected,
// Frank number 2.
func K4() [][]frank.NI {
	return [][]frank.NI{
		{1, 2, 3},
		{0, 2, 3},
		{0, 1, 3},
		{0, 1, 2},
	}
}

// Prism is the 3-prism (K3 □ K2): two triangles joined by a perfect
// matching. Cubic, 3-edge-connected, Frank number 2.
func Prism() [][]frank.NI {
	return [][]frank.NI{
		{1, 2, 3},
		{0, 2, 4},
		{0, 1, 5},
		{0, 4, 5},
		{1, 3, 5},
		{2, 3, 4},
	}
}

// K33 is the complete bipartite graph K3,3. Cubic, 3-edge-connected,
// Frank number 2.
func K33() [][]frank.NI {
	return [][]frank.NI{
		{3, 4, 5},
		{3, 4, 5},
		{3, 4, 5},
		{0, 1, 2},
		{0, 1, 2},
		{0, 1, 2},
	}
}

// Petersen is the Petersen graph: outer 5-cycle 0..4, inner pentagram
// 5..9, spokes i-(i+5). Cubic, 3-edge-connected, Frank number 3.
func Petersen() [][]frank.NI {
	return [][]frank.NI{
		{1, 4, 5},
		{0, 2, 6},
		{1, 3, 7},
		{2, 4, 8},
		{3, 0, 9},
		{0, 7, 8},
		{1, 8, 9},
		{2, 9, 5},
		{3, 5, 6},
		{4, 6, 7},
	}
}

// TwoTrianglesBridgedBySquare is cubic on 10 vertices: triangles {0,1,2}
// and {3,4,5}, a 4-cycle {6,7,8,9}, joined by the matching 0-6, 3-9, 1-4,
// 2-7, 5-8. Removing that matching leaves a 2-factor of exactly three
// cycles. The two triangles are joined directly by the matching edge 1-4
// and also through the square by a length-3 path (0-6 ... 9-3), the shape
// the second oddness-2 bridge configuration looks for.
func TwoTrianglesBridgedBySquare() [][]frank.NI {
	return [][]frank.NI{
		{1, 2, 6},
		{0, 2, 4},
		{0, 1, 7},
		{4, 5, 9},
		{1, 3, 5},
		{3, 4, 8},
		{0, 7, 9},
		{2, 6, 8},
		{5, 7, 9},
		{3, 6, 8},
	}
}

// TwoTrianglesWithDetachedSquare is cubic on 10 vertices: triangles
// {0,1,2} and {3,4,5} joined directly by the matching edge 0-3, plus a
// 4-cycle {6,7,8,9} attached only through the matching edges 1-6, 2-9,
// 4-7, 5-8. Removing the matching leaves a 2-factor of three cycles, but
// only the two triangles touch the bridge edge; the square is left
// entirely outside it.
func TwoTrianglesWithDetachedSquare() [][]frank.NI {
	return [][]frank.NI{
		{1, 2, 3},
		{0, 2, 6},
		{0, 1, 9},
		{0, 4, 5},
		{3, 5, 7},
		{3, 4, 8},
		{1, 7, 9},
		{4, 6, 8},
		{5, 7, 9},
		{2, 6, 8},
	}
}

// K4StrongOrientation returns a strong orientation of K4: the Hamiltonian
// cycle 0->1->2->3->0 plus the two chords 0->2 and 1->3.
func K4StrongOrientation() frank.Digraph {
	d := frank.NewDigraph(4)
	for _, a := range [][2]frank.NI{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}} {
		d.AddArc(a[0], a[1])
	}
	return d
}
