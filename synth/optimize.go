package synth

import "github.com/colprofile/core/pattern"

// optimize runs the single bottom-up optimization pass of §4.D step 5:
// merge adjacent Literal nodes, merge adjacent CharClass nodes of the same
// kind (summing min/max, with Inf absorbing), and collapse a
// single-element result back to that element.
func optimize(p pattern.Pattern) pattern.Pattern {
	if p.Kind != pattern.KindSeq {
		return p
	}

	merged := make([]pattern.Pattern, 0, len(p.Children))
	for _, child := range p.Children {
		if len(merged) == 0 {
			merged = append(merged, child)
			continue
		}
		last := merged[len(merged)-1]

		if last.Kind == pattern.KindLiteral && child.Kind == pattern.KindLiteral {
			merged[len(merged)-1] = pattern.NewLiteral(last.Literal + child.Literal)
			continue
		}
		if last.Kind == pattern.KindCharClass && child.Kind == pattern.KindCharClass && last.Class == child.Class {
			merged[len(merged)-1] = pattern.NewCharClass(last.Class, last.Min+child.Min, addBound(last.Max, child.Max))
			continue
		}
		merged = append(merged, child)
	}

	if len(merged) == 1 {
		return merged[0]
	}
	return pattern.NewSeq(merged)
}

func addBound(a, b pattern.Bound) pattern.Bound {
	if a.Inf || b.Inf {
		return pattern.Unbounded
	}
	return pattern.Finite(a.Value + b.Value)
}
