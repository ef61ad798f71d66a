// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-number/filter"
	"github.com/frank-number/filter/exact"
	"github.com/frank-number/filter/internal/testgraphs"
)

func TestSolveFindsComplementForK4(t *testing.T) {
	g, err := frank.NewGraph(testgraphs.K4())
	require.NoError(t, err)
	d1 := testgraphs.K4StrongOrientation()
	require.True(t, d1.StronglyConnected())
	s1 := frank.DeletableArcs(g, d1)

	d2, ok := exact.Solve(g, s1)
	require.True(t, ok)
	assert.True(t, d2.StronglyConnected())

	s2 := frank.DeletableArcs(g, d2)
	assert.Equal(t, g.Size(), s1.Union(s2).Size())
}

func TestSolveTrivialWhenCoverAlreadyComplete(t *testing.T) {
	g, err := frank.NewGraph(testgraphs.K4())
	require.NoError(t, err)
	// A deletable-set that is already all of E(G) leaves nothing for the
	// second orientation to cover, so any strong orientation completes the
	// pair and Solve must find one.
	full := frank.Full(g.Size())
	d2, ok := exact.Solve(g, full)
	require.True(t, ok)
	assert.True(t, d2.StronglyConnected())
}
