package colprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_RejectsEmptyInput(t *testing.T) {
	_, err := Profile([]string{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestProfile_RejectsNilList(t *testing.T) {
	_, err := Profile(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNotAList)
}

func TestProfileAny_RejectsNonStringValues(t *testing.T) {
	_, err := ProfileAny([]any{"a", 1, "c"}, DefaultOptions())
	assert.ErrorIs(t, err, ErrNonStringValues)
}

func TestProfileAny_AcceptsAllStrings(t *testing.T) {
	p, err := ProfileAny([]any{"active", "pending", "active", "pending"}, DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestValidate_MatchesAndRejects(t *testing.T) {
	p, err := Profile([]string{"2024-Q1", "2024-Q2", "2024-Q3", "2024-Q4"}, DefaultOptions())
	require.NoError(t, err)

	assert.NoError(t, Validate(p, "2024-Q1"))
	assert.ErrorIs(t, Validate(p, "2024-Q5"), ErrNoMatch)
}

func TestInferRegex_AccountCodeScenario(t *testing.T) {
	var values []string
	for _, prefix := range []string{"ACC", "ORG", "ACCT", "ACME"} {
		for i := 1; i <= 20; i++ {
			values = append(values, prefix+"-"+zeroPad(i, 5))
		}
	}
	regex := InferRegex(values, DefaultOptions())
	assert.Contains(t, regex, `\d{5}`)
}

func TestMerge_UnionsMembersUnderFirstProfileOptions(t *testing.T) {
	p1, err := Profile([]string{"active", "pending"}, DefaultOptions())
	require.NoError(t, err)
	p2, err := Profile([]string{"active", "cancelled"}, DefaultOptions())
	require.NoError(t, err)

	merged := Merge(p1, p2)
	require.Len(t, merged.Patterns, 1)
	assert.Contains(t, merged.Patterns[0].RegexString, "active")
	assert.Contains(t, merged.Patterns[0].RegexString, "cancelled")
	assert.Contains(t, merged.Patterns[0].RegexString, "pending")
}

func TestExport_ProducesPlainRecord(t *testing.T) {
	p, err := Profile([]string{"active", "pending"}, DefaultOptions())
	require.NoError(t, err)

	exported := Export(p)
	require.Len(t, exported.Patterns, 1)
	assert.Equal(t, p.Stats.TotalValues, exported.Stats.TotalValues)
}

func zeroPad(n, width int) string {
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	for len(s) < width {
		s = "0" + s
	}
	if s == "" {
		s = "0"
	}
	return s
}
