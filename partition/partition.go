// Package partition tracks which maze vertices are already connected while the
// spanning tree is being built.
//
// It is a disjoint-set forest over vertex ids 0..n-1 with union by rank and
// iterative path halving. Groups only ever merge; they never split.
//
// Complexity: Find and Union run in O(α(n)) amortized, Groups in O(n·α(n)).
package partition

// Tracker partitions the ids 0..n-1 into disjoint groups.
// The zero value is an empty tracker; use New.
type Tracker struct {
	parent []int
	rank   []int
	groups int
}

// New returns a Tracker holding n singleton groups. Negative n is treated as 0.
func New(n int) *Tracker {
	if n < 0 {
		n = 0
	}
	t := &Tracker{
		parent: make([]int, n),
		rank:   make([]int, n),
		groups: n,
	}
	for i := range t.parent {
		t.parent[i] = i
	}

	return t
}

// Len returns the number of tracked ids.
func (t *Tracker) Len() int {
	return len(t.parent)
}

// Find returns the representative id of the group containing v.
// It panics when v is out of range.
func (t *Tracker) Find(v int) int {
	// Path halving: point every other node on the way up at its grandparent.
	for t.parent[v] != v {
		t.parent[v] = t.parent[t.parent[v]]
		v = t.parent[v]
	}

	return v
}

// Same reports whether a and b are in the same group.
func (t *Tracker) Same(a, b int) bool {
	return t.Find(a) == t.Find(b)
}

// Union merges the groups of a and b and reports true. When a and b are
// already grouped together nothing changes and Union reports false: the edge
// a-b would close a cycle.
func (t *Tracker) Union(a, b int) bool {
	ra, rb := t.Find(a), t.Find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case t.rank[ra] < t.rank[rb]:
		t.parent[ra] = rb
	case t.rank[ra] > t.rank[rb]:
		t.parent[rb] = ra
	default:
		t.parent[rb] = ra
		t.rank[ra]++
	}
	t.groups--

	return true
}

// Count returns the current number of groups.
func (t *Tracker) Count() int {
	return t.groups
}

// Groups returns the members of every group keyed by representative id.
// Members are listed in ascending order.
func (t *Tracker) Groups() map[int][]int {
	out := make(map[int][]int, t.groups)
	for v := range t.parent {
		r := t.Find(v)
		out[r] = append(out[r], v)
	}

	return out
}
