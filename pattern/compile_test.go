package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRegex_Literal(t *testing.T) {
	assert.Equal(t, `a\.b`, ToRegex(NewLiteral("a.b")))
}

func TestToRegex_CharClass(t *testing.T) {
	cases := []struct {
		p    Pattern
		want string
	}{
		{NewCharClass(ClassDigit, 1, Finite(1)), `\d`},
		{NewCharClass(ClassDigit, 0, Finite(1)), `\d?`},
		{NewCharClass(ClassDigit, 0, Unbounded), `\d*`},
		{NewCharClass(ClassDigit, 1, Unbounded), `\d+`},
		{NewCharClass(ClassDigit, 5, Finite(5)), `\d{5}`},
		{NewCharClass(ClassDigit, 2, Unbounded), `\d{2,}`},
		{NewCharClass(ClassDigit, 2, Finite(4)), `\d{2,4}`},
		{NewCharClass(ClassUpper, 3, Finite(3)), `[A-Z]{3}`},
		{NewCharClass(ClassLower, 1, Finite(1)), `[a-z]`},
		{NewCharClass(ClassAlpha, 2, Finite(2)), `[a-zA-Z]{2}`},
		{NewCharClass(ClassAlnum, 2, Finite(2)), `[a-zA-Z0-9]{2}`},
		{NewCharClass(ClassWord, 1, Unbounded), `\w+`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToRegex(c.p))
	}
}

func TestToRegex_Enum(t *testing.T) {
	assert.Equal(t, `a`, ToRegex(NewEnum([]string{"a"})))
	assert.Equal(t, `(a|b|c)`, ToRegex(NewEnum([]string{"c", "a", "b"})))
}

func TestToRegex_Seq(t *testing.T) {
	p := NewSeq([]Pattern{
		NewEnum([]string{"ACC", "ORG"}),
		NewLiteral("-"),
		NewCharClass(ClassDigit, 5, Finite(5)),
	})
	assert.Equal(t, `(ACC|ORG)\-\d{5}`, ToRegex(p))
}

func TestToRegex_Optional(t *testing.T) {
	assert.Equal(t, `a?`, ToRegex(NewOptional(NewLiteral("a"))))

	seqOpt := NewOptional(NewSeq([]Pattern{NewLiteral("."), NewLiteral("x")}))
	assert.Equal(t, `(\.x)?`, ToRegex(seqOpt))

	enumOpt := NewOptional(NewEnum([]string{"a", "b"}))
	assert.Equal(t, `(a|b)?`, ToRegex(enumOpt))
}

func TestToRegex_Any(t *testing.T) {
	assert.Equal(t, `.*`, ToRegex(NewAny(0, Unbounded)))
	assert.Equal(t, `.{2,4}`, ToRegex(NewAny(2, Finite(4))))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `\\\^\$\.\|\?\*\+\(\)\[\]\{\}`, Escape(`\^$.|?*+()[]{}`))
	assert.Equal(t, "abc", Escape("abc"))
}
