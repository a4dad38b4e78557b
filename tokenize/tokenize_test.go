package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_CoversInputExactly(t *testing.T) {
	cases := []string{
		"",
		"ACC-00123",
		"api.example.com",
		"hello world",
		"a1B2-c3",
		"日本語-test",
		"😀😀-01",
	}

	for _, s := range cases {
		tokens := Tokenize(s)

		var rebuilt string
		wantPos := 0
		for _, tok := range tokens {
			require.Equal(t, wantPos, tok.Position, "token position must be contiguous for %q", s)
			rebuilt += tok.Value
			wantPos += tok.Length
		}
		assert.Equal(t, s, rebuilt, "tokens must reconstruct %q", s)
	}
}

func TestTokenize_EmptyString(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenize_DelimiterNeverExtends(t *testing.T) {
	tokens := Tokenize("a--b")
	require.Len(t, tokens, 4)
	assert.Equal(t, Lower, tokens[0].Kind)
	assert.Equal(t, Delimiter, tokens[1].Kind)
	assert.Equal(t, 1, tokens[1].Length)
	assert.Equal(t, Delimiter, tokens[2].Kind)
	assert.Equal(t, 1, tokens[2].Length)
	assert.Equal(t, Lower, tokens[3].Kind)
}

func TestTokenize_Classification(t *testing.T) {
	tokens := Tokenize("ACC-00123")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: Upper, Value: "ACC", Length: 3, Position: 0}, tokens[0])
	assert.Equal(t, Token{Kind: Delimiter, Value: "-", Length: 1, Position: 3}, tokens[1])
	assert.Equal(t, Token{Kind: Digits, Value: "00123", Length: 5, Position: 4}, tokens[2])
}

func TestTokenize_WhitespaceRuns(t *testing.T) {
	tokens := Tokenize("a  b")
	require.Len(t, tokens, 3)
	assert.Equal(t, Whitespace, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Length)
}

func TestTokenize_NonASCIIIsLiteral(t *testing.T) {
	tokens := Tokenize("日本語")
	for _, tok := range tokens {
		assert.Equal(t, Literal, tok.Kind)
	}
}

func TestTokenizeMerged_CollapsesAdjacentAlpha(t *testing.T) {
	tokens := TokenizeMerged("ACCid-01")
	require.Len(t, tokens, 3)
	assert.Equal(t, Alpha, tokens[0].Kind)
	assert.Equal(t, "ACCid", tokens[0].Value)
	assert.Equal(t, Delimiter, tokens[1].Kind)
	assert.Equal(t, Digits, tokens[2].Kind)
}

func TestTokenizeMerged_NoAdjacentAlphaIsNoOp(t *testing.T) {
	tokens := TokenizeMerged("A1B2")
	require.Len(t, tokens, 4)
}
