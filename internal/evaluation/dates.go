package evaluation

import (
	"regexp"
	"strings"
	"time"
)

// frenchMonths maps French month tokens to their English forms so generic
// layout parsing only needs English. Accent-stripped spellings are included
// because the generator is inconsistent about diacritics.
var frenchMonths = map[string]string{
	"janvier":   "january",
	"février":   "february",
	"fevrier":   "february",
	"mars":      "march",
	"avril":     "april",
	"mai":       "may",
	"juin":      "june",
	"juillet":   "july",
	"août":      "august",
	"aout":      "august",
	"septembre": "september",
	"octobre":   "october",
	"novembre":  "november",
	"décembre":  "december",
	"decembre":  "december",
}

// presentSynonyms are the tokens that resolve to the evaluation instant.
var presentSynonyms = map[string]struct{}{
	"present":      {},
	"current":      {},
	"now":          {},
	"today":        {},
	"ongoing":      {},
	"présent":      {},
	"actuel":       {},
	"actuellement": {},
	"aujourd'hui":  {},
	"en cours":     {},
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// dateLayouts is the ladder of accepted date formats, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01",
	"01/2006",
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"2006",
}

// NormalizeDateText rewrites a loosely formatted date string into a canonical
// form: French month names translated, present synonyms collapsed to
// "Present". Unrecognized text passes through trimmed.
func NormalizeDateText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if IsPresent(trimmed) {
		return "Present"
	}

	words := strings.Fields(strings.ToLower(trimmed))
	translated := false
	for i, w := range words {
		if english, ok := frenchMonths[strings.Trim(w, ".,")]; ok {
			words[i] = english
			translated = true
		}
	}
	if !translated {
		return trimmed
	}
	return strings.Join(words, " ")
}

// IsPresent reports whether the string is a "still ongoing" marker.
func IsPresent(s string) bool {
	_, ok := presentSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// ParseDate parses a loosely formatted resume date. Accepts bare years,
// YYYY-MM, month-name forms (with French months translated first), and falls
// back to scanning for a 4-digit year. Present synonyms resolve to now.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	normalized := NormalizeDateText(s)
	if normalized == "" {
		return time.Time{}, false
	}
	if normalized == "Present" {
		return now, true
	}

	// Title-case month tokens so stdlib layouts match.
	candidate := titleCaseWords(normalized)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t, true
		}
	}

	if match := yearPattern.FindString(normalized); match != "" {
		if t, err := time.Parse("2006", match); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 1 && w[0] >= 'a' && w[0] <= 'z' {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
