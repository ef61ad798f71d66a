// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frank-number/filter"
	"github.com/frank-number/filter/internal/testgraphs"
)

func bruteDeletable(g *frank.Graph, d frank.Digraph) frank.BitSet {
	s := frank.NewBitSet(g.Size())
	for u := 0; u < d.Order(); u++ {
		for v := 0; v < d.Order(); v++ {
			if !d.HasArc(frank.NI(u), frank.NI(v)) {
				continue
			}
			d.RemoveArc(frank.NI(u), frank.NI(v))
			if d.StronglyConnected() {
				s.Add(g.EdgeIndex(frank.NI(u), frank.NI(v)))
			}
			d.AddArc(frank.NI(u), frank.NI(v))
		}
	}
	return s
}

func TestDeletableArcsMatchesBruteDefinition(t *testing.T) {
	g, err := frank.NewGraph(testgraphs.K4())
	assert.NoError(t, err)
	d := testgraphs.K4StrongOrientation()
	assert.True(t, d.StronglyConnected())

	got := frank.DeletableArcs(g, d)
	want := bruteDeletable(g, d)
	assert.True(t, got.Equal(want))
}

func TestDeletableArcsSymmetricUnderReverse(t *testing.T) {
	g, err := frank.NewGraph(testgraphs.K4())
	assert.NoError(t, err)
	d := testgraphs.K4StrongOrientation()

	forward := frank.DeletableArcs(g, d)
	backward := frank.DeletableArcs(g, d.Reverse())
	assert.True(t, forward.Equal(backward))
}
