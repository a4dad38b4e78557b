package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCost_Literal(t *testing.T) {
	assert.InDelta(t, 1.3, Cost(NewLiteral("abc")), 1e-9)
	assert.InDelta(t, 5.0, Cost(NewLiteral(
		"this literal is far longer than forty characters long")), 1e-9)
}

func TestCost_CharClass(t *testing.T) {
	assert.InDelta(t, 1.0, Cost(NewCharClass(ClassDigit, 5, Finite(5))), 1e-9)
	assert.InDelta(t, 2.0, Cost(NewCharClass(ClassDigit, 1, Unbounded)), 1e-9)
	assert.InDelta(t, 1.8, Cost(NewCharClass(ClassDigit, 2, Finite(5))), 1e-9)
}

func TestCost_Enum(t *testing.T) {
	assert.InDelta(t, 1.0, Cost(NewEnum([]string{"a"})), 1e-9)
	assert.InDelta(t, 1.8, Cost(NewEnum([]string{"a", "b", "c", "d"})), 1e-9)
}

func TestCost_OptionalAddsPenalty(t *testing.T) {
	base := Cost(NewLiteral("a"))
	assert.InDelta(t, base+0.5, Cost(NewOptional(NewLiteral("a"))), 1e-9)
}

func TestCost_Any(t *testing.T) {
	assert.InDelta(t, 10.0, Cost(NewAny(0, Unbounded)), 1e-9)
}

func TestCost_SeqIsAdditive(t *testing.T) {
	a := NewLiteral("a")
	b := NewCharClass(ClassDigit, 5, Finite(5))
	seq := NewSeq([]Pattern{a, b})
	assert.InDelta(t, Cost(a)+Cost(b), Cost(seq), 1e-9)
}
