// Package costmodel scores candidate patterns against sample data:
// coverage, precision, complexity, interpretability, and a weighted
// score combining them, plus the enum_threshold suggestion heuristic.
//
// Grounded on inducer/quality.go's multi-factor scoring
// (QualityConfig weights combined into a single score per candidate
// pattern) generalized from DNS-permutation quality scoring to this
// spec's coverage/precision/complexity/interpretability factors.
package costmodel

import "github.com/colprofile/core/pattern"

// Weights are the score() weighting coefficients of §4.E.
type Weights struct {
	Coverage         float64
	Precision        float64
	Complexity       float64
	Interpretability float64
}

// DefaultWeights mirrors the §4.E defaults.
func DefaultWeights() Weights {
	return Weights{Coverage: 2.0, Precision: 1.5, Complexity: 1.0, Interpretability: 0.5}
}

// Coverage is the fraction of s whose full string the compiled regex of p
// matches. An empty s yields 0.0.
func Coverage(p pattern.Pattern, s []string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	matcher := pattern.NewCompiledMatcher(pattern.ToRegex(p))
	matched := 0
	for _, v := range s {
		if matcher.Match(v) {
			matched++
		}
	}
	return float64(matched) / float64(len(s))
}

// Precision blends p's specificity with its discrimination between known
// valid and known invalid samples. With no invalid samples it falls back
// to specificity alone; with matches in neither set it falls back the
// same way.
func Precision(p pattern.Pattern, valid, invalid []string) float64 {
	spec := pattern.Specificity(p)
	if len(invalid) == 0 {
		return spec
	}

	matcher := pattern.NewCompiledMatcher(pattern.ToRegex(p))
	v := countMatches(matcher, valid)
	i := countMatches(matcher, invalid)
	if v+i == 0 {
		return spec
	}
	return (spec + float64(v)/float64(v+i)) / 2
}

func countMatches(m *pattern.CompiledMatcher, values []string) int {
	n := 0
	for _, v := range values {
		if m.Match(v) {
			n++
		}
	}
	return n
}

// Complexity normalizes p's cost into [0, 1].
func Complexity(p pattern.Pattern) float64 {
	c := pattern.Cost(p) / 50
	if c > 1.0 {
		return 1.0
	}
	return c
}

// Interpretability is a step function of p's top-level sequence length and
// the largest Enum anywhere in its tree, returning one of
// {0.3, 0.5, 0.6, 0.8, 1.0}: the more sequence elements and the larger any
// enumeration, the harder a human reads the pattern at a glance.
func Interpretability(p pattern.Pattern) float64 {
	seqLen := seqLength(p)
	enumSize := maxEnumSize(p)

	switch {
	case seqLen <= 1 && enumSize <= 1:
		return 1.0
	case seqLen <= 3 && enumSize <= 5:
		return 0.8
	case seqLen <= 5 && enumSize <= 10:
		return 0.6
	case seqLen <= 8 && enumSize <= 20:
		return 0.5
	default:
		return 0.3
	}
}

func seqLength(p pattern.Pattern) int {
	if p.Kind != pattern.KindSeq {
		return 1
	}
	return len(p.Children)
}

func maxEnumSize(p pattern.Pattern) int {
	max := 0
	if p.Kind == pattern.KindEnum {
		max = len(p.Values)
	}
	for _, c := range p.Children {
		if m := maxEnumSize(c); m > max {
			max = m
		}
	}
	if p.Inner != nil {
		if m := maxEnumSize(*p.Inner); m > max {
			max = m
		}
	}
	return max
}

// Score combines coverage, precision, complexity, and interpretability
// into a single lower-is-better figure per §4.E.
func Score(p pattern.Pattern, s, valid, invalid []string, w Weights) float64 {
	cov := Coverage(p, s)
	prec := Precision(p, valid, invalid)
	cplx := Complexity(p)
	interp := Interpretability(p)
	return w.Coverage*(1-cov) + w.Precision*(1-prec) + w.Complexity*cplx + w.Interpretability*(1-interp)
}

// SuggestEnumThreshold recommends an enum_threshold from the distinct-vs-
// total ratio of s, per §4.E's categorical/semi-categorical/high-
// cardinality heuristic.
func SuggestEnumThreshold(s []string) int {
	distinct := distinctCount(s)
	n := len(s)
	if distinct == 0 {
		return 3
	}

	ratio := float64(n) / float64(distinct)
	switch {
	case distinct <= 10 && ratio >= 3:
		return distinct + 5
	case distinct <= 30 && ratio >= 2:
		return 10
	case distinct <= 100:
		return 5
	default:
		return 3
	}
}

func distinctCount(s []string) int {
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		seen[v] = struct{}{}
	}
	return len(seen)
}
