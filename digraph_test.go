// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frank-number/filter"
)

func checkDigraphInvariant(t *testing.T, d frank.Digraph) {
	t.Helper()
	sum := 0
	for u := 0; u < d.Order(); u++ {
		sum += d.OutDegree(frank.NI(u))
		for v := 0; v < d.Order(); v++ {
			assert.Equalf(t, d.HasArc(frank.NI(u), frank.NI(v)), d.In[v].Contains(u),
				"v in out[u] <=> u in in[v] at (%d,%d)", u, v)
		}
	}
	assert.Equal(t, sum, d.Arcs)
}

func TestDigraphInvariantAfterMutation(t *testing.T) {
	d := frank.NewDigraph(5)
	arcs := [][2]frank.NI{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}
	for _, a := range arcs {
		d.AddArc(a[0], a[1])
	}
	checkDigraphInvariant(t, d)

	d.RemoveArc(2, 3)
	checkDigraphInvariant(t, d)
	assert.False(t, d.HasArc(2, 3))
	assert.Equal(t, len(arcs)-1, d.Arcs)
}

func TestDigraphUndoLog(t *testing.T) {
	d := frank.NewDigraph(4)
	var log []frank.Undo
	log = append(log, d.Do(0, 1, true))
	log = append(log, d.Do(1, 2, true))
	log = append(log, d.Do(2, 0, true))
	checkDigraphInvariant(t, d)
	before := d.Arcs

	log = append(log, d.Do(0, 1, false)) // remove it again
	assert.False(t, d.HasArc(0, 1))

	d.RollbackAll(log[3:])
	checkDigraphInvariant(t, d)
	assert.Equal(t, before, d.Arcs)
	assert.True(t, d.HasArc(0, 1))
	assert.True(t, d.HasArc(1, 2))
	assert.True(t, d.HasArc(2, 0))
}

func TestDigraphReverse(t *testing.T) {
	d := frank.NewDigraph(3)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	r := d.Reverse()
	assert.True(t, r.HasArc(1, 0))
	assert.True(t, r.HasArc(2, 1))
	assert.Equal(t, d.Arcs, r.Arcs)
}
