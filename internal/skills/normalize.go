// Package skills canonicalizes skill names into comparable keys and matches
// job requirements against the text evidence of a candidate profile.
package skills

import (
	"regexp"
	"strings"
)

var (
	disallowedRunes = regexp.MustCompile(`[^a-z0-9+#.\s-]`)
	separatorRuns   = regexp.MustCompile(`[._\-\s]+`)
)

// fusedTermFixes corrects common generator typos after normalization, where a
// compound tool name gets split or misspelled.
var fusedTermFixes = map[string]string{
	"mango db":       "mongodb",
	"mongo db":       "mongodb",
	"postgre sql":    "postgresql",
	"java script":    "javascript",
	"type script":    "typescript",
	"elastic search": "elasticsearch",
}

// NormalizeKey canonicalizes a skill token for comparison: lowercase,
// parentheses replaced by spaces, characters outside [a-z0-9+#.\s-] stripped,
// separator and whitespace runs collapsed to single spaces.
func NormalizeKey(s string) string {
	key := strings.ToLower(s)
	key = strings.NewReplacer("(", " ", ")", " ").Replace(key)
	key = disallowedRunes.ReplaceAllString(key, "")
	key = separatorRuns.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)
	if fixed, ok := fusedTermFixes[key]; ok {
		return fixed
	}
	return key
}

// CompactKey is NormalizeKey with all internal whitespace removed, used to
// match compound tool names regardless of spacing ("nextjs" vs "next js").
func CompactKey(s string) string {
	return strings.ReplaceAll(NormalizeKey(s), " ", "")
}
