package synth

import "github.com/colprofile/core/pattern"

const bestCandidateCoverageFloor = 0.95

// candidate pairs a synthesized pattern with the coverage it achieves
// against the members it was synthesized from.
type candidate struct {
	pattern  pattern.Pattern
	coverage float64
	cost     float64
}

// Best runs Synthesize once per EnumThresholdCandidates, evaluates each
// result's coverage over members, discards candidates under the coverage
// floor, and returns the survivor with lowest cost. If none clears the
// floor it falls back to the enum_threshold=5 candidate, per §4.D.
func Best(members []string) pattern.Pattern {
	candidates := make([]candidate, len(EnumThresholdCandidates))
	for i, threshold := range EnumThresholdCandidates {
		opts := DefaultOptions()
		opts.EnumThreshold = threshold
		p := Synthesize(members, opts)
		candidates[i] = candidate{
			pattern:  p,
			coverage: coverage(p, members),
			cost:     pattern.Cost(p),
		}
	}

	var best *candidate
	for i := range candidates {
		c := &candidates[i]
		if c.coverage < bestCandidateCoverageFloor {
			continue
		}
		if best == nil || c.cost < best.cost {
			best = c
		}
	}
	if best != nil {
		return best.pattern
	}
	return candidates[0].pattern
}

// coverage is the fraction of members whose full string the compiled
// regex of p matches. Grounded on the cost model's coverage(p, S)
// definition (§4.E); duplicated here (rather than imported from
// costmodel) to avoid a synth->costmodel->synth-adjacent import shape,
// since costmodel itself has no dependency on synth.
func coverage(p pattern.Pattern, members []string) float64 {
	if len(members) == 0 {
		return 0.0
	}
	matcher := pattern.NewCompiledMatcher(pattern.ToRegex(p))
	matched := 0
	for _, m := range members {
		if matcher.Match(m) {
			matched++
		}
	}
	return float64(matched) / float64(len(members))
}
