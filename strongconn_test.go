// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frank-number/filter"
)

// bruteReachable computes all-pairs reachability with Floyd-Warshall over
// boolean "or", used as the ground truth P4 checks StronglyConnected
// against.
func bruteReachable(d frank.Digraph) [][]bool {
	n := d.Order()
	r := make([][]bool, n)
	for i := range r {
		r[i] = make([]bool, n)
		r[i][i] = true
		for j := 0; j < n; j++ {
			if d.HasArc(frank.NI(i), frank.NI(j)) {
				r[i][j] = true
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if r[i][k] && r[k][j] {
					r[i][j] = true
				}
			}
		}
	}
	return r
}

func bruteStronglyConnected(d frank.Digraph) bool {
	r := bruteReachable(d)
	for _, row := range r {
		for _, ok := range row {
			if !ok {
				return false
			}
		}
	}
	return true
}

func randomTournament(n int, rng *rand.Rand) frank.Digraph {
	d := frank.NewDigraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Intn(2) == 0 {
				d.AddArc(frank.NI(u), frank.NI(v))
			} else {
				d.AddArc(frank.NI(v), frank.NI(u))
			}
		}
	}
	return d
}

func TestStronglyConnectedAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(9) // 2..10
		d := randomTournament(n, rng)
		assert.Equal(t, bruteStronglyConnected(d), d.StronglyConnected(), "n=%d trial=%d", n, trial)
	}
}

func TestStronglyConnectedCycleIsStrong(t *testing.T) {
	d := frank.NewDigraph(4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 3)
	d.AddArc(3, 0)
	assert.True(t, d.StronglyConnected())
}

func TestStronglyConnectedAcyclicIsNotStrong(t *testing.T) {
	d := frank.NewDigraph(4)
	d.AddArc(0, 1)
	d.AddArc(0, 2)
	d.AddArc(0, 3)
	d.AddArc(1, 2)
	d.AddArc(1, 3)
	d.AddArc(2, 3)
	assert.False(t, d.StronglyConnected())
}

func TestContainsDirectedPath(t *testing.T) {
	d := frank.NewDigraph(4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 3)
	assert.True(t, d.ContainsDirectedPath(0, 3))
	assert.False(t, d.ContainsDirectedPath(3, 0))
	assert.True(t, d.ContainsDirectedPath(1, 1))
}
