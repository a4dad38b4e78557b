package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	assert.Equal(t, "UUU-DDDDD", Signature("ACC-00123"))
}

func TestCompactSignature(t *testing.T) {
	assert.Equal(t, "U-D", CompactSignature("ACC-00123"))
}

func TestSignature_Empty(t *testing.T) {
	assert.Equal(t, "", Signature(""))
	assert.Equal(t, "", CompactSignature(""))
}

func TestSkeleton(t *testing.T) {
	cases := map[string]string{
		"ACC-00123":       "X-X",
		"api.example.com": "X.X.X",
		"hello world":     "X_X",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Skeleton(in), "skeleton of %q", in)
	}
}
