// Package synth synthesizes a single pattern.Pattern from a cluster's
// member strings: tokenize every member, align tokens column-wise, choose
// the best pattern element at each column, then assemble and optimize.
//
// Grounded on inducer/patterns.go's buildLevelPositionMap (the "column
// bag" concept, there keyed by DNS level+position instead of plain token
// index) and its single-token/multi-token alternation-vs-literal decision.
package synth

import (
	"sort"

	"github.com/colprofile/core/pattern"
	"github.com/colprofile/core/tokenize"
)

// Options controls per-column synthesis decisions.
type Options struct {
	EnumThreshold    int
	LengthTolerance  float64 // accepted, currently unused by synthesis (§9 open question)
}

// DefaultOptions mirrors the §6 default of enum_threshold=10.
func DefaultOptions() Options {
	return Options{EnumThreshold: 10, LengthTolerance: 0.2}
}

// EnumThresholdCandidates are the enum_threshold values the best-candidate
// selection (§4.D) runs synthesis under.
var EnumThresholdCandidates = []int{5, 10, 20, 50}

// Synthesize runs the column-alignment + per-column synthesis + assemble +
// optimize pipeline once, under the given options. members must be
// non-empty.
func Synthesize(members []string, opts Options) pattern.Pattern {
	columns := alignColumns(members)

	children := make([]pattern.Pattern, len(columns))
	for i, bag := range columns {
		children[i] = synthesizeColumn(bag, opts.EnumThreshold)
	}

	assembled := pattern.NewSeq(children)
	return optimize(assembled)
}

// alignColumns tokenizes every member and groups tokens by column index.
// Column c's bag is the tokens at index c from every member that has an
// index-c token — members shorter than N simply don't contribute to the
// trailing columns.
func alignColumns(members []string) [][]tokenize.Token {
	tokenized := make([][]tokenize.Token, len(members))
	maxLen := 0
	for i, m := range members {
		tokenized[i] = tokenize.Tokenize(m)
		if len(tokenized[i]) > maxLen {
			maxLen = len(tokenized[i])
		}
	}

	columns := make([][]tokenize.Token, maxLen)
	for c := 0; c < maxLen; c++ {
		for _, toks := range tokenized {
			if c < len(toks) {
				columns[c] = append(columns[c], toks[c])
			}
		}
	}
	return columns
}

func minMaxLength(bag []tokenize.Token) (min, max int) {
	min = bag[0].Length
	max = bag[0].Length
	for _, t := range bag[1:] {
		if t.Length < min {
			min = t.Length
		}
		if t.Length > max {
			max = t.Length
		}
	}
	return
}

func distinctValues(bag []tokenize.Token) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, t := range bag {
		if _, ok := seen[t.Value]; !ok {
			seen[t.Value] = struct{}{}
			values = append(values, t.Value)
		}
	}
	sort.Strings(values)
	return values
}

func allSameValue(bag []tokenize.Token) (string, bool) {
	v := bag[0].Value
	for _, t := range bag[1:] {
		if t.Value != v {
			return "", false
		}
	}
	return v, true
}

func allSameLength(bag []tokenize.Token) (int, bool) {
	l := bag[0].Length
	for _, t := range bag[1:] {
		if t.Length != l {
			return 0, false
		}
	}
	return l, true
}

// shouldEnumerate implements the enumerate-vs-generalize decision of §4.D:
// enumerate if d<=5; do not enumerate if d>t; else enumerate iff
// d <= 0.3*n (high repetition).
func shouldEnumerate(distinctCount, totalCount, threshold int) bool {
	if distinctCount <= 5 {
		return true
	}
	if distinctCount > threshold {
		return false
	}
	return float64(distinctCount) <= 0.3*float64(totalCount)
}

func charClassKind(k tokenize.Kind) pattern.ClassKind {
	switch k {
	case tokenize.Digits:
		return pattern.ClassDigit
	case tokenize.Upper:
		return pattern.ClassUpper
	case tokenize.Lower:
		return pattern.ClassLower
	case tokenize.Alpha:
		return pattern.ClassAlpha
	case tokenize.Alnum:
		return pattern.ClassAlnum
	default:
		return pattern.ClassAny
	}
}
