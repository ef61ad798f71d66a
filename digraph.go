// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

// NI is a vertex index, used throughout as a slice/bitset index: a narrow
// integer type for node indices.
type NI int32

// Digraph is a directed graph on a fixed vertex count, stored as per-vertex
// outgoing and incoming neighbor bitsets. It maintains the invariant
// v ∈ Out[u] ⇔ u ∈ In[v] across AddArc/RemoveArc, and tracks the arc count
// incrementally rather than recomputing it.
type Digraph struct {
	Out, In []BitSet
	Arcs    int
}

// NewDigraph returns an empty digraph on n vertices: every Out/In bitset
// empty, Arcs zero.
func NewDigraph(n int) Digraph {
	d := Digraph{
		Out: make([]BitSet, n),
		In:  make([]BitSet, n),
	}
	for v := range d.Out {
		d.Out[v] = NewBitSet(n)
		d.In[v] = NewBitSet(n)
	}
	return d
}

// Order returns the number of vertices.
func (d Digraph) Order() int { return len(d.Out) }

// HasArc reports whether u→v is present.
func (d Digraph) HasArc(u, v NI) bool { return d.Out[u].Contains(int(v)) }

// AddArc adds the arc u→v. The caller is responsible for not adding an arc
// that is already present; AddArc performs no duplicate-arc detection.
func (d *Digraph) AddArc(u, v NI) {
	d.Out[u].Add(int(v))
	d.In[v].Add(int(u))
	d.Arcs++
}

// RemoveArc removes the arc u→v. The caller is responsible for only
// removing an arc known to be present.
func (d *Digraph) RemoveArc(u, v NI) {
	d.Out[u].Remove(int(v))
	d.In[v].Remove(int(u))
	d.Arcs--
}

// OutDegree and InDegree report a vertex's out- and in-degree.
func (d Digraph) OutDegree(v NI) int { return d.Out[v].Size() }
func (d Digraph) InDegree(v NI) int  { return d.In[v].Size() }

// Undo is a record of a single AddArc/RemoveArc call, sufficient to reverse
// it. A sequence of Undo records lets a caller roll back a chain of arc
// mutations in O(depth) rather than copying the whole Out/In array at every
// step, per the preferred alternative in the design notes on macro-style
// mutation.
type Undo struct {
	u, v  NI
	added bool // true if the recorded operation was an AddArc
}

// Do applies an arc mutation and returns the Undo record to reverse it.
func (d *Digraph) Do(u, v NI, add bool) Undo {
	if add {
		d.AddArc(u, v)
	} else {
		d.RemoveArc(u, v)
	}
	return Undo{u, v, add}
}

// Rollback reverses a single Undo record.
func (d *Digraph) Rollback(u Undo) {
	if u.added {
		d.RemoveArc(u.u, u.v)
	} else {
		d.AddArc(u.u, u.v)
	}
}

// RollbackAll reverses a slice of Undo records in reverse order, the way a
// transactional arc-list undo log must be replayed.
func (d *Digraph) RollbackAll(log []Undo) {
	for i := len(log) - 1; i >= 0; i-- {
		d.Rollback(log[i])
	}
}

// Clone returns an independent deep copy of d.
func (d Digraph) Clone() Digraph {
	c := Digraph{
		Out:  make([]BitSet, len(d.Out)),
		In:   make([]BitSet, len(d.In)),
		Arcs: d.Arcs,
	}
	for v := range d.Out {
		c.Out[v] = d.Out[v].Clone()
		c.In[v] = d.In[v].Clone()
	}
	return c
}

// Reverse returns the digraph with every arc flipped.
func (d Digraph) Reverse() Digraph {
	r := Digraph{
		Out:  make([]BitSet, len(d.Out)),
		In:   make([]BitSet, len(d.In)),
		Arcs: d.Arcs,
	}
	for v := range d.Out {
		r.Out[v] = d.In[v].Clone()
		r.In[v] = d.Out[v].Clone()
	}
	return r
}
