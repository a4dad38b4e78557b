package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnum_Canonicalizes(t *testing.T) {
	p := NewEnum([]string{"c", "a", "b", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, p.Values)
}

func TestNewSeq_SingleChildCollapses(t *testing.T) {
	lit := NewLiteral("x")
	p := NewSeq([]Pattern{lit})
	assert.Equal(t, lit, p)
}

func TestNewSeq_MultipleChildrenKeepsSeq(t *testing.T) {
	p := NewSeq([]Pattern{NewLiteral("a"), NewLiteral("b")})
	require.Equal(t, KindSeq, p.Kind)
	assert.Len(t, p.Children, 2)
}

func TestIsFixed(t *testing.T) {
	assert.True(t, NewCharClass(ClassDigit, 3, Finite(3)).IsFixed())
	assert.False(t, NewCharClass(ClassDigit, 3, Finite(5)).IsFixed())
	assert.False(t, NewCharClass(ClassDigit, 3, Unbounded).IsFixed())
}
