// Package profile assembles per-cluster synthesized patterns into a
// Profile: coverage accounting, min_coverage pruning, anomaly detection,
// and summary stats.
//
// Grounded on inducer/orchestrator.go's LearnPatterns top-level pipeline
// (cluster -> generate -> filter -> sort -> return) and
// internal/inducer/filter.go's FilterSubsumedPatterns (coverage-descending
// sort before pruning), generalized from DNS-permutation learning to this
// spec's profile assembly.
package profile

import (
	"sort"

	"github.com/colprofile/core/cluster"
	"github.com/colprofile/core/pattern"
	"github.com/colprofile/core/synth"
)

// Options controls clustering, synthesis, and assembly. Field names and
// defaults mirror the §6 option table.
type Options struct {
	MaxClusters     int
	MinCoverage     float64
	EnumThreshold   int
	DetectAnomalies bool
	LengthTolerance float64
	MergeThreshold  float64
	MinClusterSize  int
}

// DefaultOptions mirrors the §6 defaults.
func DefaultOptions() Options {
	return Options{
		MaxClusters:     5,
		MinCoverage:     0.01,
		EnumThreshold:   10,
		DetectAnomalies: true,
		LengthTolerance: 0.2,
		MergeThreshold:  0.3,
		MinClusterSize:  1,
	}
}

// PatternInfo is one surviving pattern plus its accounting against the
// input it was synthesized from.
type PatternInfo struct {
	Pattern      pattern.Pattern
	RegexString  string
	Coverage     float64
	MatchedCount int
	Members      []string
	Cost         float64
	Specificity  float64
}

// Stats summarizes a Profile's coverage and composition.
type Stats struct {
	TotalValues    int     `json:"total_values" yaml:"total_values"`
	DistinctValues int     `json:"distinct_values" yaml:"distinct_values"`
	PatternCount   int     `json:"pattern_count" yaml:"pattern_count"`
	TotalCoverage  float64 `json:"total_coverage" yaml:"total_coverage"`
	AnomalyCount   int     `json:"anomaly_count" yaml:"anomaly_count"`
}

// Profile is the immutable output of Assemble.
type Profile struct {
	Patterns  []PatternInfo
	Anomalies []string
	Stats     Stats
	Options   Options

	matchers []*pattern.CompiledMatcher
}

// Assemble is the top-level orchestrator of §4.E. values must be
// non-empty; callers at the package boundary (colprofile.Profile) are
// responsible for the NotAList/EmptyInput/NonStringValues validation that
// precedes this call.
func Assemble(values []string, opts Options) *Profile {
	distinct := distinctValues(values)

	if len(distinct) <= opts.EnumThreshold {
		return assembleEnumShortcut(values, distinct, opts)
	}

	clusters := cluster.Cluster(values, cluster.Options{
		MaxClusters:    opts.MaxClusters,
		MergeThreshold: opts.MergeThreshold,
		MinClusterSize: opts.MinClusterSize,
	})

	patterns := make([]PatternInfo, 0, len(clusters))
	for _, c := range clusters {
		p := synth.Best(c.Members)
		info := buildPatternInfo(p, c.Members, values)
		if info.Coverage < opts.MinCoverage {
			continue
		}
		patterns = append(patterns, info)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Coverage > patterns[j].Coverage
	})

	return finish(values, distinct, patterns, opts)
}

// assembleEnumShortcut handles §4.E step 2: when the whole input's
// cardinality is already at or below enum_threshold, emit a single Enum
// pattern covering everything and skip clustering/synthesis entirely.
func assembleEnumShortcut(values, distinct []string, opts Options) *Profile {
	p := pattern.NewEnum(distinct)
	info := buildPatternInfo(p, values, values)
	return finish(values, distinct, []PatternInfo{info}, opts)
}

func finish(values, distinct []string, patterns []PatternInfo, opts Options) *Profile {
	matchers := make([]*pattern.CompiledMatcher, len(patterns))
	for i, p := range patterns {
		matchers[i] = pattern.NewCompiledMatcher(p.RegexString)
	}

	var anomalies []string
	if opts.DetectAnomalies {
		anomalies = findAnomalies(values, matchers)
	}

	var totalMatched int
	for _, p := range patterns {
		totalMatched += p.MatchedCount
	}
	totalCoverage := float64(totalMatched) / float64(len(values))
	if totalCoverage > 1.0 {
		totalCoverage = 1.0
	}

	return &Profile{
		Patterns:  patterns,
		Anomalies: anomalies,
		Options:   opts,
		matchers:  matchers,
		Stats: Stats{
			TotalValues:    len(values),
			DistinctValues: len(distinct),
			PatternCount:   len(patterns),
			TotalCoverage:  totalCoverage,
			AnomalyCount:   len(anomalies),
		},
	}
}

func buildPatternInfo(p pattern.Pattern, members, universe []string) PatternInfo {
	regex := pattern.ToRegex(p)
	matcher := pattern.NewCompiledMatcher(regex)
	matched := 0
	for _, v := range universe {
		if matcher.Match(v) {
			matched++
		}
	}
	return PatternInfo{
		Pattern:      p,
		RegexString:  regex,
		Coverage:     float64(matched) / float64(len(universe)),
		MatchedCount: matched,
		Members:      members,
		Cost:         pattern.Cost(p),
		Specificity:  pattern.Specificity(p),
	}
}

// findAnomalies returns, in input order, every value matched by none of
// matchers.
func findAnomalies(values []string, matchers []*pattern.CompiledMatcher) []string {
	var anomalies []string
	for _, v := range values {
		matched := false
		for _, m := range matchers {
			if m.Match(v) {
				matched = true
				break
			}
		}
		if !matched {
			anomalies = append(anomalies, v)
		}
	}
	return anomalies
}

// Matches reports whether value matches at least one surviving pattern.
func (p *Profile) Matches(value string) bool {
	for _, m := range p.matchers {
		if m.Match(value) {
			return true
		}
	}
	return false
}

func distinctValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
