package tokenize

import "strings"

// Signature computes the full signature of s: each character-class token
// contributes Length copies of its class letter; Delimiter/Literal tokens
// contribute their raw value verbatim. Example: "ACC-00123" -> "UUU-DDDDD".
func Signature(s string) string {
	return buildSignature(Tokenize(s), true)
}

// CompactSignature computes the compact signature of s: each token
// contributes a single class letter; delimiters/literals still contribute
// their raw value. Example: "ACC-00123" -> "U-D".
func CompactSignature(s string) string {
	return buildSignature(Tokenize(s), false)
}

func buildSignature(tokens []Token, full bool) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case Delimiter, Literal:
			b.WriteString(t.Value)
		default:
			letter := t.Kind.String()
			if full {
				b.WriteString(strings.Repeat(letter, t.Length))
			} else {
				b.WriteString(letter)
			}
		}
	}
	return b.String()
}

// Skeleton reduces s to its delimiter skeleton: "_" for Whitespace, the
// literal value for Delimiter, "X" for every other token kind — one
// emission per token, not per character. This is the stage-1 primitive
// that cluster.Cluster groups strings by.
func Skeleton(s string) string {
	tokens := Tokenize(s)
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case Whitespace:
			b.WriteString("_")
		case Delimiter:
			b.WriteString(t.Value)
		default:
			b.WriteString("X")
		}
	}
	return b.String()
}
