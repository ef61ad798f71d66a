// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-number/filter"
	"github.com/frank-number/filter/exact"
)

func TestPoolDetectsComplementaryPair(t *testing.T) {
	full := frank.Full(6)
	p := exact.NewPool(full)

	a := frank.NewBitSet(6)
	a.Add(0)
	a.Add(1)
	a.Add(2)
	var stats frank.Stats
	assert.Equal(t, 0, p.Insert(a, &stats))

	b := full.Difference(a)
	assert.Equal(t, 2, p.Insert(b, &stats))
}

func TestPoolDiscardsSubsetOfStoredSet(t *testing.T) {
	full := frank.Full(6)
	p := exact.NewPool(full)

	big := frank.NewBitSet(6)
	for i := 0; i < 4; i++ {
		big.Add(i)
	}
	var stats frank.Stats
	require.Equal(t, 0, p.Insert(big, &stats))
	before := p.Size()

	small := frank.NewBitSet(6)
	small.Add(0)
	small.Add(1)
	assert.Equal(t, 0, p.Insert(small, &stats))
	assert.Equal(t, before, p.Size())
	assert.Greater(t, stats.PoolSubsetDiscards, 0)
}

func TestPoolTombstonesSupersetOfStoredSet(t *testing.T) {
	full := frank.Full(6)
	p := exact.NewPool(full)

	small := frank.NewBitSet(6)
	small.Add(0)
	small.Add(1)
	var stats frank.Stats
	require.Equal(t, 0, p.Insert(small, &stats))

	big := frank.NewBitSet(6)
	for i := 0; i < 4; i++ {
		big.Add(i)
	}
	assert.Equal(t, 0, p.Insert(big, &stats))
	assert.Greater(t, stats.PoolSupersetPromotions, 0)
}
