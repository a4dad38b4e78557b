package tokenize

// Tokenize walks s code point by code point, classifying each character and
// extending the current run while the class matches. Delimiter characters
// never extend a run — each one always produces its own single-length
// token. Tokenization is total: the empty string yields an empty slice.
//
// Grounded on internal/inducer/tokenizer.go's tokenizeLevel run-splitting
// idiom, generalized from the DNS-label-specific dash/digit split to the
// full character-class table.
func Tokenize(s string) []Token {
	return tokenize(s, false)
}

// TokenizeMerged runs the base tokenizer and then collapses any adjacent
// Upper/Lower/Alpha tokens into a single Alpha token whose Value is their
// concatenation.
func TokenizeMerged(s string) []Token {
	return mergeAlpha(tokenize(s, true))
}

func tokenize(s string, _ bool) []Token {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(runes))
	pos := 0
	i := 0
	for i < len(runes) {
		kind := classify(runes[i])
		start := i
		if kind == Delimiter {
			// Delimiter tokens never extend: one rune, one token.
			i++
		} else {
			for i < len(runes) && classify(runes[i]) == kind {
				i++
			}
		}
		value := string(runes[start:i])
		tokens = append(tokens, Token{
			Kind:     kind,
			Value:    value,
			Length:   i - start,
			Position: pos,
		})
		pos += i - start
	}
	return tokens
}

func mergeAlpha(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}

	isAlphaLike := func(k Kind) bool {
		return k == Upper || k == Lower || k == Alpha
	}

	merged := make([]Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if !isAlphaLike(tokens[i].Kind) {
			merged = append(merged, tokens[i])
			i++
			continue
		}

		start := i
		var value string
		for i < len(tokens) && isAlphaLike(tokens[i].Kind) {
			value += tokens[i].Value
			i++
		}
		merged = append(merged, Token{
			Kind:     Alpha,
			Value:    value,
			Length:   len([]rune(value)),
			Position: tokens[start].Position,
		})
	}
	return merged
}
