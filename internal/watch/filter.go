package watch

import (
	"path/filepath"
	"strings"
)

// PatternFilter selects template files by case-insensitive base-name globs.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a pattern filter.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches reports whether path passes the filter. Excludes win over includes;
// an empty include list admits everything not excluded.
func (f *PatternFilter) Matches(path string) bool {
	base := strings.ToLower(filepath.Base(path))

	for _, pattern := range f.Exclude {
		if matchFold(pattern, base) {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matchFold(pattern, base) {
			return true
		}
	}
	return false
}

func matchFold(pattern, base string) bool {
	matched, _ := filepath.Match(strings.ToLower(pattern), base)
	return matched
}
