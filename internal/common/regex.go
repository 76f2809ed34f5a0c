package common

import "regexp"

// CompileFull compiles pattern anchored at both ends, so the result only
// matches a whole string rather than a substring.
func CompileFull(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

// MustCompileFull is CompileFull for patterns known at compile time.
func MustCompileFull(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)$`)
}

// MatchFull reports whether text matches pattern as a whole.
// Returns an error if the pattern is invalid.
func MatchFull(pattern, text string) (bool, error) {
	re, err := CompileFull(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}
