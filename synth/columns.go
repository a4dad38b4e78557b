package synth

import (
	"strings"

	"github.com/colprofile/core/pattern"
	"github.com/colprofile/core/tokenize"
)

// synthesizeColumn chooses the pattern element for one column bag, per the
// per-column synthesis rules of §4.D.
func synthesizeColumn(bag []tokenize.Token, enumThreshold int) pattern.Pattern {
	kinds := distinctKinds(bag)

	if len(kinds) == 1 {
		switch kinds[0] {
		case tokenize.Delimiter:
			return synthesizeDelimiter(bag)
		case tokenize.Whitespace:
			return synthesizeWhitespace(bag)
		case tokenize.Literal:
			return synthesizeLiteralKind(bag, enumThreshold)
		default:
			return synthesizeCharClassKind(bag, kinds[0], enumThreshold)
		}
	}

	if onlyUpperLower(kinds) {
		return synthesizeEnumerateOrGeneralize(bag, pattern.ClassAlpha, enumThreshold)
	}

	return synthesizeMixed(bag, enumThreshold)
}

func distinctKinds(bag []tokenize.Token) []tokenize.Kind {
	seen := make(map[tokenize.Kind]struct{})
	var kinds []tokenize.Kind
	for _, t := range bag {
		if _, ok := seen[t.Kind]; !ok {
			seen[t.Kind] = struct{}{}
			kinds = append(kinds, t.Kind)
		}
	}
	return kinds
}

func onlyUpperLower(kinds []tokenize.Kind) bool {
	if len(kinds) != 2 {
		return false
	}
	has := map[tokenize.Kind]bool{}
	for _, k := range kinds {
		has[k] = true
	}
	return has[tokenize.Upper] && has[tokenize.Lower]
}

func synthesizeDelimiter(bag []tokenize.Token) pattern.Pattern {
	if v, ok := allSameValue(bag); ok {
		return pattern.NewLiteral(v)
	}
	return pattern.NewEnum(distinctValues(bag))
}

func synthesizeWhitespace(bag []tokenize.Token) pattern.Pattern {
	if l, ok := allSameLength(bag); ok {
		return pattern.NewLiteral(strings.Repeat(" ", l))
	}
	min, max := minMaxLength(bag)
	return pattern.NewAny(min, pattern.Finite(max))
}

func synthesizeLiteralKind(bag []tokenize.Token, enumThreshold int) pattern.Pattern {
	values := distinctValues(bag)
	if len(values) <= enumThreshold {
		return pattern.NewEnum(values)
	}
	min, max := minMaxLength(bag)
	return pattern.NewAny(min, pattern.Finite(max))
}

func synthesizeCharClassKind(bag []tokenize.Token, kind tokenize.Kind, enumThreshold int) pattern.Pattern {
	return synthesizeEnumerateOrGeneralize(bag, charClassKind(kind), enumThreshold)
}

// synthesizeEnumerateOrGeneralize applies the enumerate-vs-generalize
// decision to bag, generalizing (when it loses) into a CharClass of the
// given target class.
func synthesizeEnumerateOrGeneralize(bag []tokenize.Token, target pattern.ClassKind, enumThreshold int) pattern.Pattern {
	values := distinctValues(bag)
	if shouldEnumerate(len(values), len(bag), enumThreshold) {
		return pattern.NewEnum(values)
	}
	min, max := minMaxLength(bag)
	return pattern.NewCharClass(target, min, pattern.Finite(max))
}

func synthesizeMixed(bag []tokenize.Token, enumThreshold int) pattern.Pattern {
	values := distinctValues(bag)
	if len(values) <= enumThreshold {
		return pattern.NewEnum(values)
	}
	min, max := minMaxLength(bag)
	return pattern.NewCharClass(pattern.ClassAlnum, min, pattern.Finite(max))
}
