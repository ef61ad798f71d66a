// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

// Stats collects the per-graph counters the original tool kept as process-
// global mutable state. Per the design notes on global mutable counters,
// this is instead a plain record threaded through the driver and the
// search/solver/pool components, each of which accumulates into the
// fields it owns.
type Stats struct {
	OrientationsGenerated  int // candidates produced by the orientation search
	StronglyConnected      int // of those, how many passed the strong-connectivity test
	SurvivedNecessaryCheck int // of those, how many survived the local necessary condition

	PoolSubsetDiscards     int // pool candidates discarded as subset-dominated
	PoolSupersetPromotions int // stored pool sets replaced by a tombstone
	PoolPeakSize           int // largest the pool ever grew

	HeuristicSuccesses int // graphs the oddness-2 heuristic resolved directly
	GraphsProcessed    int // graphs admitted past sharding and cubicity checks
	GraphsSkipped      int // graphs skipped for failing cubicity/size checks
	GraphsEmitted      int // graphs written to the output stream
}

// Add accumulates another Stats into s, for merging shard-local counters.
func (s *Stats) Add(o Stats) {
	s.OrientationsGenerated += o.OrientationsGenerated
	s.StronglyConnected += o.StronglyConnected
	s.SurvivedNecessaryCheck += o.SurvivedNecessaryCheck
	s.PoolSubsetDiscards += o.PoolSubsetDiscards
	s.PoolSupersetPromotions += o.PoolSupersetPromotions
	if o.PoolPeakSize > s.PoolPeakSize {
		s.PoolPeakSize = o.PoolPeakSize
	}
	s.HeuristicSuccesses += o.HeuristicSuccesses
	s.GraphsProcessed += o.GraphsProcessed
	s.GraphsSkipped += o.GraphsSkipped
	s.GraphsEmitted += o.GraphsEmitted
}
