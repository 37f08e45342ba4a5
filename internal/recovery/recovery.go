// Package recovery turns arbitrary near-JSON generator output into a parsed
// value. Generators wrap JSON in markdown fences, emit smart quotes and raw
// control characters, leave trailing commas, and get cut off mid-string by
// token limits; this package tolerates all of it.
package recovery

import (
	"encoding/json"
	"strings"
)

// Result is a successfully recovered JSON value. Recovered reports whether
// the winning candidate text differs from the trimmed raw input, so callers
// can log a warning without failing the operation.
type Result struct {
	Value     any
	Recovered bool
}

// ParseWithRecovery attempts a fixed ladder of candidate texts derived from
// the input and returns the first one that parses as JSON:
//
//  1. the raw text as-is
//  2. the text with a surrounding markdown code fence stripped
//  3. the longest balanced-bracket object/array substring
//  4. a repaired version of (2): quotes normalized, control characters
//     handled, trailing commas removed, unterminated nesting force-closed
//  5. a repaired version of (3)
//
// It fails only when no candidate parses, returning the first parser error
// encountered.
func ParseWithRecovery(text string) (*Result, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, &ParseError{Message: "input is empty"}
	}

	candidates := []string{raw, stripCodeFence(raw)}
	if sub, ok := balancedSlice(raw); ok {
		candidates = append(candidates, sub)
	}
	candidates = append(candidates, repairText(raw))
	if sub, ok := balancedSlice(raw); ok {
		candidates = append(candidates, repairText(sub))
	}

	var firstErr error
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		var value any
		if err := json.Unmarshal([]byte(candidate), &value); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return &Result{Value: value, Recovered: candidate != raw}, nil
	}

	return nil, &ParseError{Message: "no candidate parsed as JSON", Cause: firstErr}
}
