// Package colprofile is the automatic regex-pattern discovery engine: it
// turns a column of text values into a small set of regular expressions
// describing the column's structural format, plus a list of outliers that
// fit none of them.
//
// Grounded on the root alterx package's Execute/New public surface (a
// thin, validated entry point wrapping an internal pipeline), rebuilt
// around this package's own tokenize -> cluster -> synth -> profile
// pipeline.
package colprofile

import (
	"sort"

	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/colprofile/core/pattern"
	"github.com/colprofile/core/profile"
	"github.com/colprofile/core/synth"
)

// Kind discriminates the validation errors profile() can return, per §7.
type Kind int

const (
	EmptyInput Kind = iota
	NonStringValues
	NotAList
	NoMatch
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case NonStringValues:
		return "NonStringValues"
	case NotAList:
		return "NotAList"
	case NoMatch:
		return "NoMatch"
	default:
		return "Unknown"
	}
}

// Sentinel errors surfaced by Profile/ProfileAny/Validate, wrapped with a
// tag via errorutil so callers can distinguish this package's failures
// from a wrapped cause.
var (
	ErrEmptyInput      = errorutil.NewWithTag("colprofile", "input is empty")
	ErrNonStringValues = errorutil.NewWithTag("colprofile", "input contains non-string values")
	ErrNotAList        = errorutil.NewWithTag("colprofile", "input is not a list")
	ErrNoMatch         = errorutil.NewWithTag("colprofile", "value matches no pattern in profile")
)

// Options mirrors profile.Options; re-exported here so callers depend only
// on the root package.
type Options = profile.Options

// DefaultOptions returns the §6 option defaults.
func DefaultOptions() Options {
	return profile.DefaultOptions()
}

// Profile validates strings and, if valid, assembles a Profile describing
// its structural format.
func Profile(strings []string, opts Options) (*profile.Profile, error) {
	if strings == nil {
		return nil, ErrNotAList
	}
	if len(strings) == 0 {
		return nil, ErrEmptyInput
	}
	return profile.Assemble(strings, opts), nil
}

// ProfileAny accepts a heterogeneous slice, as a host binding might
// receive from a dynamically typed caller, and rejects it unless every
// element is a string.
func ProfileAny(values []any, opts Options) (*profile.Profile, error) {
	if values == nil {
		return nil, ErrNotAList
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	strs := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, ErrNonStringValues
		}
		strs[i] = s
	}
	return profile.Assemble(strs, opts), nil
}

// Validate reports whether value matches at least one PatternInfo in p.
func Validate(p *profile.Profile, value string) error {
	if p.Matches(value) {
		return nil
	}
	return ErrNoMatch
}

// InferPattern runs the synthesizer once over strings under the given
// enum_threshold (via opts.EnumThreshold, default 10) and returns the raw
// pattern AST, without clustering or profile assembly.
func InferPattern(strings []string, opts Options) pattern.Pattern {
	sOpts := synth.DefaultOptions()
	if opts.EnumThreshold > 0 {
		sOpts.EnumThreshold = opts.EnumThreshold
	}
	if opts.LengthTolerance > 0 {
		sOpts.LengthTolerance = opts.LengthTolerance
	}
	return synth.Synthesize(strings, sOpts)
}

// InferRegex is InferPattern followed by regex lowering.
func InferRegex(strings []string, opts Options) string {
	return pattern.ToRegex(InferPattern(strings, opts))
}

// Merge re-profiles the deduplicated union of two profiles' recorded
// pattern members, under p1's options. Per the source ambiguity recorded
// in the design notes, anomalies are not carried forward: merge only
// looks at PatternInfo.Members, so prior outliers are forgotten.
func Merge(p1, p2 *profile.Profile) *profile.Profile {
	seen := make(map[string]struct{})
	var union []string
	collect := func(p *profile.Profile) {
		for _, info := range p.Patterns {
			for _, m := range info.Members {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				union = append(union, m)
			}
		}
	}
	collect(p1)
	collect(p2)
	sort.Strings(union)
	return profile.Assemble(union, p1.Options)
}

// ExportedPatternInfo is the serialization-ready record for one pattern in
// an export.
type ExportedPatternInfo struct {
	Regex        string  `json:"regex" yaml:"regex"`
	Pretty       string  `json:"pretty" yaml:"pretty"`
	Coverage     float64 `json:"coverage" yaml:"coverage"`
	MatchedCount int     `json:"matched_count" yaml:"matched_count"`
	Specificity  float64 `json:"specificity" yaml:"specificity"`
}

// ExportedProfile is a plain, serialization-ready record of a Profile.
type ExportedProfile struct {
	Patterns []ExportedPatternInfo `json:"patterns" yaml:"patterns"`
	Stats    profile.Stats         `json:"stats" yaml:"stats"`
}

// Export converts p into a plain record suitable for JSON/YAML
// serialization by a host adapter.
func Export(p *profile.Profile) ExportedProfile {
	out := ExportedProfile{
		Patterns: make([]ExportedPatternInfo, len(p.Patterns)),
		Stats:    p.Stats,
	}
	for i, info := range p.Patterns {
		out.Patterns[i] = ExportedPatternInfo{
			Regex:        info.RegexString,
			Pretty:       info.RegexString,
			Coverage:     info.Coverage,
			MatchedCount: info.MatchedCount,
			Specificity:  info.Specificity,
		}
	}
	return out
}
