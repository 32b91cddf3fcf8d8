package partition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	u := New(5)
	require.Equal(t, 5, u.Count())
	require.True(t, u.Union(0, 1))
	require.True(t, u.Union(1, 2))
	require.True(t, u.Union(3, 4))
	require.False(t, u.Union(2, 0), "0 and 2 already share a group")
	require.True(t, u.Same(0, 2))
	require.False(t, u.Same(0, 3))
	require.Equal(t, 2, u.Count())

	groups := u.Groups()
	require.Len(t, groups, 2)
	require.Equal(t, []int{0, 1, 2}, groups[u.Find(0)])
	require.Equal(t, []int{3, 4}, groups[u.Find(3)])
}

func TestTrackerEmpty(t *testing.T) {
	u := New(-3)
	require.Zero(t, u.Len())
	require.Zero(t, u.Count())
	require.Empty(t, u.Groups())
}

func TestTrackerRandomMergesPartition(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(1))
	u := New(n)
	merges := 0
	for u.Count() > 1 {
		if u.Union(rng.Intn(n), rng.Intn(n)) {
			merges++
		}
	}
	require.Equal(t, n-1, merges, "every successful union removes exactly one group")

	groups := u.Groups()
	require.Len(t, groups, 1)
	seen := make(map[int]bool, n)
	for _, members := range groups {
		for _, v := range members {
			require.False(t, seen[v], "vertex %d listed twice", v)
			seen[v] = true
		}
	}
	require.Len(t, seen, n)
}
