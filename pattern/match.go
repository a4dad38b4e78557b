package pattern

import (
	"regexp"
	"sync"

	"github.com/projectdiscovery/gologger"
)

// Matches compiles "^" + ToRegex(p) + "$" and reports whether s matches it
// in full. A compile failure (should not happen for well-formed patterns
// emitted by this package) is logged and treated as "does not match" —
// it never panics and never propagates an error, per §7.
func Matches(p Pattern, s string) bool {
	re, ok := compileAnchored(ToRegex(p))
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// CompiledMatcher lazily caches a compiled anchored regexp for a fixed
// regex string, so a PatternInfo can cache its compiled regex across many
// Validate calls without recompiling each time — Profiles are immutable
// after construction, so no synchronization beyond sync.Once is needed.
type CompiledMatcher struct {
	regex string
	once  sync.Once
	re    *regexp.Regexp
}

// NewCompiledMatcher returns a matcher for the given (unanchored) regex
// string; compilation is deferred until the first Match call.
func NewCompiledMatcher(regex string) *CompiledMatcher {
	return &CompiledMatcher{regex: regex}
}

// Match reports whether s fully matches the matcher's regex.
func (m *CompiledMatcher) Match(s string) bool {
	m.once.Do(func() {
		re, ok := compileAnchored(m.regex)
		if ok {
			m.re = re
		}
	})
	if m.re == nil {
		return false
	}
	return m.re.MatchString(s)
}

func compileAnchored(regex string) (*regexp.Regexp, bool) {
	re, err := regexp.Compile("^" + regex + "$")
	if err != nil {
		gologger.Warning().Msgf("failed to compile pattern regex %q: %v", regex, err)
		return nil, false
	}
	return re, true
}
