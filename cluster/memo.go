package cluster

import (
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// editDistanceMemo memoizes Levenshtein distance computations for one
// Cluster call. It is call-scoped, never package-scoped: a fresh memo is
// created and discarded per invocation, so the module stays free of
// global mutable state per §5.
//
// Grounded on internal/inducer/editdistance.go's EditDistanceMemo (same
// mutex-guarded memoization shape), reused here for normalized-skeleton
// distance instead of raw-domain distance.
type editDistanceMemo struct {
	mu    sync.Mutex
	cache map[string]int
}

func newEditDistanceMemo() *editDistanceMemo {
	return &editDistanceMemo{cache: make(map[string]int)}
}

func (m *editDistanceMemo) distance(a, b string) int {
	key := memoKey(a, b)

	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.cache[key]; ok {
		return d
	}
	d := levenshtein.ComputeDistance(a, b)
	m.cache[key] = d
	return d
}

// memoKey normalizes (a, b) to a lexicographically ordered key so
// distance(a, b) and distance(b, a) share a cache entry.
func memoKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	var sb strings.Builder
	sb.Grow(len(a) + len(b) + 1)
	sb.WriteString(a)
	sb.WriteByte(0)
	sb.WriteString(b)
	return sb.String()
}
