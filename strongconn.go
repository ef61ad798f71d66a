// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package frank

// StronglyConnected reports whether d is strongly connected, using a
// Kosaraju two-pass test: a forward DFS from every unvisited vertex
// recording a finish order, then a single reverse-adjacency DFS from the
// last-finished vertex. d is strongly connected iff that second DFS visits
// every vertex.
//
// This is specialized to the yes/no question this package needs (rather
// than a Pearce-style single-pass SCC labeling). The deletable-arc engine
// does not use it; its path search is the plain forward DFS of
// ContainsDirectedPath.
func (d Digraph) StronglyConnected() bool {
	n := d.Order()
	if n <= 1 {
		return true
	}
	visited := NewBitSet(n)
	order := make([]NI, 0, n)
	var visit func(NI)
	visit = func(v NI) {
		visited.Add(int(v))
		d.Out[v].Iterate(func(wi int) bool {
			w := NI(wi)
			if !visited.Contains(int(w)) {
				visit(w)
			}
			return true
		})
		order = append(order, v)
	}
	for v := 0; v < n; v++ {
		if !visited.Contains(v) {
			visit(NI(v))
		}
	}

	reached := NewBitSet(n)
	var assign func(NI)
	assign = func(v NI) {
		reached.Add(int(v))
		d.In[v].Iterate(func(wi int) bool {
			w := NI(wi)
			if !reached.Contains(int(w)) {
				assign(w)
			}
			return true
		})
	}
	assign(order[len(order)-1])
	return reached.Size() == n
}

// ContainsDirectedPath reports whether d has a directed path from u to v,
// via a plain forward DFS over Out. Used by the deletable-arc engine to
// test reachability after an arc has been removed, without recomputing
// full strong connectivity.
func (d Digraph) ContainsDirectedPath(u, v NI) bool {
	if u == v {
		return true
	}
	visited := NewBitSet(d.Order())
	var found bool
	var dfs func(NI)
	dfs = func(x NI) {
		if found || visited.Contains(int(x)) {
			return
		}
		visited.Add(int(x))
		if x == v {
			found = true
			return
		}
		d.Out[x].Iterate(func(wi int) bool {
			dfs(NI(wi))
			return !found
		})
	}
	dfs(u)
	return found
}
