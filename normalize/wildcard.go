package normalize

import (
	"regexp"
	"strings"
)

// pattern is a compiled ignore pattern. The pattern language supports a
// single metacharacter, `*`, matching any run of characters. Matches are
// case-insensitive and anchored to the full node name.
type pattern struct {
	source string
	re     *regexp.Regexp
}

// compilePattern compiles a wildcard pattern. Invalid patterns cannot occur:
// every literal segment is quoted before assembly.
func compilePattern(src string) pattern {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for i, segment := range strings.Split(src, "*") {
		if i > 0 {
			sb.WriteString(".*")
		}
		sb.WriteString(regexp.QuoteMeta(segment))
	}
	sb.WriteString("$")
	return pattern{source: src, re: regexp.MustCompile(sb.String())}
}

// compilePatterns compiles a pattern list, skipping empty entries.
func compilePatterns(sources []string) []pattern {
	patterns := make([]pattern, 0, len(sources))
	for _, src := range sources {
		if src == "" {
			continue
		}
		patterns = append(patterns, compilePattern(src))
	}
	return patterns
}

// matches reports whether the node name matches the pattern.
func (p pattern) matches(name string) bool {
	return p.re.MatchString(name)
}

// MatchesAny reports whether name matches at least one of the wildcard
// patterns. Exposed so callers can pre-test their ignore lists.
func MatchesAny(name string, wildcards []string) bool {
	for _, p := range compilePatterns(wildcards) {
		if p.matches(name) {
			return true
		}
	}
	return false
}
