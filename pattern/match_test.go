package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	p := NewSeq([]Pattern{
		NewEnum([]string{"ACC", "ORG"}),
		NewLiteral("-"),
		NewCharClass(ClassDigit, 5, Finite(5)),
	})
	assert.True(t, Matches(p, "ACC-00123"))
	assert.False(t, Matches(p, "ACC-001234"))
	assert.False(t, Matches(p, "XYZ-00123"))
}

func TestCompiledMatcher_CachesAcrossCalls(t *testing.T) {
	m := NewCompiledMatcher(`\d{3}`)
	assert.True(t, m.Match("123"))
	assert.False(t, m.Match("12"))
	assert.True(t, m.Match("456"))
}
