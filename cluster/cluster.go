// Package cluster groups input strings by delimiter-skeleton similarity,
// respecting a max-cluster budget.
//
// Grounded on inducer/clustering.go's Clusterer.editClosures (neighbors
// within delta distance, processed-set greedy grouping) generalized from
// "cluster raw domain strings by edit distance" to "cluster normalized
// skeletons by normalized edit distance", and bounded by max_clusters
// (closer in spirit to internal/inducer/pattern_budget.go's
// MinPatterns/MaxPatterns safety floor/ceiling than to the teacher's
// unbounded closures).
package cluster

import (
	"sort"
	"strings"

	"github.com/colprofile/core/tokenize"
)

// Result is a group of source strings sharing a delimiter skeleton.
type Result struct {
	ID               int
	Members          []string
	Signature        string
	CompactSignature string
	Representative   string
}

// Options controls clustering behavior.
type Options struct {
	MaxClusters    int
	MergeThreshold float64
	MinClusterSize int
}

// DefaultOptions mirrors the §6 defaults.
func DefaultOptions() Options {
	return Options{
		MaxClusters:    5,
		MergeThreshold: 0.3,
		MinClusterSize: 1,
	}
}

type skeletonGroup struct {
	skeleton string
	members  []string
	order    int // index of first occurrence, for deterministic tie-breaks
}

// Cluster partitions values into at most opts.MaxClusters clusters per the
// four-stage algorithm of §4.C. An empty input yields no clusters.
func Cluster(values []string, opts Options) []Result {
	if len(values) == 0 {
		return nil
	}

	groups := groupBySkeleton(values)
	groups = mergeSimilar(groups, opts.MergeThreshold)
	groups = enforceSizeAndCount(groups, opts.MinClusterSize, opts.MaxClusters)

	clusters := make([]Result, 0, len(groups))
	for i, g := range groups {
		rep := representative(g.members)
		clusters = append(clusters, Result{
			ID:               i,
			Members:          g.members,
			Signature:        tokenize.Signature(rep),
			CompactSignature: tokenize.CompactSignature(rep),
			Representative:   rep,
		})
	}
	return clusters
}

func groupBySkeleton(values []string) []*skeletonGroup {
	index := make(map[string]*skeletonGroup)
	var groups []*skeletonGroup
	for _, v := range values {
		sk := tokenize.Skeleton(v)
		g, ok := index[sk]
		if !ok {
			g = &skeletonGroup{skeleton: sk, order: len(groups)}
			index[sk] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, v)
	}
	return groups
}

// mergeSimilar enumerates skeleton groups ordered by descending member
// count (ties broken by first-seen order) and greedily absorbs every
// later group whose normalized skeleton distance is within threshold.
func mergeSimilar(groups []*skeletonGroup, threshold float64) []*skeletonGroup {
	ordered := make([]*skeletonGroup, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].members) != len(ordered[j].members) {
			return len(ordered[i].members) > len(ordered[j].members)
		}
		return ordered[i].order < ordered[j].order
	})

	memo := newEditDistanceMemo()
	absorbed := make([]bool, len(ordered))
	merged := make([]*skeletonGroup, 0, len(ordered))

	for i := range ordered {
		if absorbed[i] {
			continue
		}
		g := ordered[i]
		for j := i + 1; j < len(ordered); j++ {
			if absorbed[j] {
				continue
			}
			if normalizedDistance(g.skeleton, ordered[j].skeleton, memo) <= threshold {
				g.members = append(g.members, ordered[j].members...)
				absorbed[j] = true
			}
		}
		merged = append(merged, g)
	}
	return merged
}

// normalizedDistance collapses runs of "X" into a single "X" in both
// skeletons, then returns Levenshtein distance divided by the longer
// normalized length. Identical normalized skeletons yield 0.
func normalizedDistance(a, b string, memo *editDistanceMemo) float64 {
	na, nb := collapseRuns(a), collapseRuns(b)
	if na == nb {
		return 0
	}
	longer := len([]rune(na))
	if l := len([]rune(nb)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 0
	}
	return float64(memo.distance(na, nb)) / float64(longer)
}

func collapseRuns(skeleton string) string {
	var b strings.Builder
	var prev rune
	first := true
	for _, r := range skeleton {
		if r == 'X' && !first && prev == 'X' {
			continue
		}
		b.WriteRune(r)
		prev = r
		first = false
	}
	return b.String()
}

// enforceSizeAndCount drops groups smaller than minSize, then folds any
// overflow beyond maxClusters into a single tail cluster.
func enforceSizeAndCount(groups []*skeletonGroup, minSize, maxClusters int) []*skeletonGroup {
	kept := make([]*skeletonGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.members) >= minSize {
			kept = append(kept, g)
		}
	}

	if len(kept) <= maxClusters || maxClusters <= 0 {
		return kept
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i].members) > len(kept[j].members)
	})

	head := kept[:maxClusters-1]
	tail := kept[maxClusters-1:]

	tailGroup := &skeletonGroup{skeleton: "", order: len(kept)}
	for _, g := range tail {
		tailGroup.members = append(tailGroup.members, g.members...)
	}

	result := make([]*skeletonGroup, 0, maxClusters)
	result = append(result, head...)
	result = append(result, tailGroup)
	return result
}

// representative returns the member whose length is closest to the
// median member length, ties broken by first-seen order.
func representative(members []string) string {
	if len(members) == 0 {
		return ""
	}
	lengths := make([]int, len(members))
	for i, m := range members {
		lengths[i] = len([]rune(m))
	}
	sortedLengths := append([]int(nil), lengths...)
	sort.Ints(sortedLengths)
	median := sortedLengths[len(sortedLengths)/2]

	bestIdx := 0
	bestDiff := -1
	for i, l := range lengths {
		diff := l - median
		if diff < 0 {
			diff = -diff
		}
		if bestDiff == -1 || diff < bestDiff {
			bestDiff = diff
			bestIdx = i
		}
	}
	return members[bestIdx]
}
