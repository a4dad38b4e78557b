package pattern

import (
	"fmt"
	"strings"
)

// metacharacters is the PCRE metacharacter set this escape function covers,
// plus '-' (so a literal dash lowers to `\-`). Implemented locally rather
// than relying on a host-provided escape (e.g. regexp.QuoteMeta's
// RE2-specific set) per the design notes on cross-implementation stability.
const metacharacters = `\^$.|?*+()[]{}-`

// Escape backslash-escapes every PCRE metacharacter, and '-', in s.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(metacharacters, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func classText(k ClassKind) string {
	switch k {
	case ClassDigit:
		return `\d`
	case ClassUpper:
		return "[A-Z]"
	case ClassLower:
		return "[a-z]"
	case ClassAlpha:
		return "[a-zA-Z]"
	case ClassAlnum:
		return "[a-zA-Z0-9]"
	case ClassWord:
		return `\w`
	default: // ClassAny
		return "."
	}
}

func quantifier(min int, max Bound) string {
	switch {
	case !max.Inf && max.Value == min && min == 1:
		return ""
	case !max.Inf && min == 0 && max.Value == 1:
		return "?"
	case max.Inf && min == 0:
		return "*"
	case max.Inf && min == 1:
		return "+"
	case !max.Inf && max.Value == min:
		return fmt.Sprintf("{%d}", min)
	case max.Inf:
		return fmt.Sprintf("{%d,}", min)
	default:
		return fmt.Sprintf("{%d,%d}", min, max.Value)
	}
}

// ToRegex deterministically lowers p into a regex string. Anchoring is the
// matcher's job (pattern.Matches, colprofile.Validate), never embedded here.
func ToRegex(p Pattern) string {
	switch p.Kind {
	case KindLiteral:
		return Escape(p.Literal)
	case KindCharClass:
		return classText(p.Class) + quantifier(p.Min, p.Max)
	case KindEnum:
		return enumRegex(p.Values)
	case KindSeq:
		var b strings.Builder
		for _, c := range p.Children {
			b.WriteString(ToRegex(c))
		}
		return b.String()
	case KindOptional:
		inner := *p.Inner
		lowered := ToRegex(inner)
		if needsGroup(inner) {
			return "(" + lowered + ")?"
		}
		return lowered + "?"
	case KindAny:
		return "." + quantifier(p.Min, p.Max)
	default:
		return ""
	}
}

func enumRegex(values []string) string {
	if len(values) == 1 {
		return Escape(values[0])
	}
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Escape(v)
	}
	return "(" + strings.Join(escaped, "|") + ")"
}

// needsGroup reports whether an Optional's inner pattern must be wrapped in
// a group before the trailing "?" binds correctly. A Seq lowers to
// multiple concatenated fragments and needs the wrap. A multi-value Enum
// is already grouped by enumRegex ("(a|b)"), so wrapping it again would
// just double the parens; its own group already binds the trailing "?".
func needsGroup(inner Pattern) bool {
	return inner.Kind == KindSeq
}
