// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package graph6_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-number/filter"
	"github.com/frank-number/filter/graph6"
)

func countEdges(adj [][]frank.NI) int {
	n := 0
	for _, nbrs := range adj {
		n += len(nbrs)
	}
	return n / 2
}

func ExampleDecode_k4() {
	adj, err := graph6.Decode([]byte("C~"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(adj), countEdges(adj))
	// Output:
	// 4 6
}

func TestDecodeTriangle(t *testing.T) {
	// Hand-built: N=3 ('B' = 66 = 63+3), all three upper-triangle bits set
	// (MSB-first within the character), encoding K3.
	adj, err := graph6.Decode([]byte("Bw"))
	require.NoError(t, err)
	require.Len(t, adj, 3)
	for v, nbrs := range adj {
		assert.Lenf(t, nbrs, 2, "vertex %d", v)
	}
	assert.Equal(t, 3, countEdges(adj))
}

func TestDecodePath(t *testing.T) {
	// N=3, only edges (0,1) and (1,2): a path, not a triangle.
	adj, err := graph6.Decode([]byte("Bg"))
	require.NoError(t, err)
	require.Len(t, adj, 3)
	assert.Equal(t, 2, countEdges(adj))
	assert.Len(t, adj[1], 2) // the middle vertex has both edges
}

// graph6 literals for small named cubic graphs decode to graphs of the
// right order and cubicity under the standard McKay bit order.
func TestDecodeNamedGraphLiterals(t *testing.T) {
	cases := []struct {
		name string
		line string
		n    int
	}{
		{"K4", "C~", 4},
		{"K3,3", "EFz_", 6},
		{"Petersen", "IsP@OkWHG", 10},
		{"3-prism", "EUxo", 6},
	}
	for _, c := range cases {
		adj, err := graph6.Decode([]byte(c.line))
		require.NoErrorf(t, err, "%s", c.name)
		require.Lenf(t, adj, c.n, "%s vertex count", c.name)
		g, err := frank.NewGraph(adj)
		require.NoErrorf(t, err, "%s", c.name)
		assert.Truef(t, g.IsCubic(), "%s should decode cubic", c.name)
	}
}

func TestDecodeRejectsDigraph6(t *testing.T) {
	_, err := graph6.Decode([]byte("&C~"))
	assert.ErrorIs(t, err, graph6.ErrDigraph6)
}

func TestDecodeStripsHeader(t *testing.T) {
	a, errA := graph6.Decode([]byte("C~"))
	b, errB := graph6.Decode([]byte(">>graph6<<C~"))
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, len(a), len(b))
}

func TestReaderSkipsInvalidLinesAndPreservesRaw(t *testing.T) {
	input := "C~\n!not a graph\nEUxo\n"
	r := graph6.NewReader(strings.NewReader(input))
	var warnings []string
	r.Warn = func(line int, msg string) { warnings = append(warnings, msg) }

	g1, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "C~", string(g1.Raw))

	g2, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "EUxo", string(g2.Raw))
	assert.Len(t, warnings, 1)

	_, ok = r.Next()
	assert.False(t, ok)
	assert.NoError(t, r.Err())
}
