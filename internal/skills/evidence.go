package skills

import (
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// minCompactMatchLen gates substring matching of single-token variants
// against the compact evidence text. Shorter tokens only match via the skill
// key set. Tunable: raising it trades recall on short tool names for fewer
// accidental hits inside unrelated compact words.
const minCompactMatchLen = 3

// Evidence is the searchable view of a candidate profile, built once per
// candidate and reused for every requirement lookup.
type Evidence struct {
	NormalizedText string
	CompactText    string
	Keys           map[string]struct{}
}

// BuildEvidence flattens the profile's free text (summary, experience titles,
// companies and highlights, project names, descriptions and links) together
// with the declared skills list into normalized search structures. Declared
// skills contribute all of their variants to the key set so alias forms match
// in both directions.
func BuildEvidence(p *types.RawProfile) *Evidence {
	var parts []string
	parts = append(parts, p.Summary)
	for _, exp := range p.Experience {
		parts = append(parts, exp.Title, exp.Company)
		parts = append(parts, exp.Highlights...)
	}
	for _, proj := range p.Projects {
		parts = append(parts, proj.Name, proj.Description)
		parts = append(parts, proj.Links...)
	}
	parts = append(parts, p.Skills...)

	joined := strings.Join(parts, " ")
	ev := &Evidence{
		NormalizedText: NormalizeKey(joined),
		CompactText:    CompactKey(joined),
		Keys:           make(map[string]struct{}),
	}
	for _, skill := range p.Skills {
		for _, variant := range Variants(skill) {
			ev.Keys[variant] = struct{}{}
		}
	}
	return ev
}

// HasSkillMatch reports whether any variant of the required skill appears in
// the evidence: directly in the skill key set, as a phrase inside the
// normalized text for multi-word variants, or as a substring of the compact
// text for single-token variants long enough to be unambiguous.
func HasSkillMatch(requiredSkill string, ev *Evidence) bool {
	for _, variant := range Variants(requiredSkill) {
		if _, ok := ev.Keys[variant]; ok {
			return true
		}
		if strings.Contains(variant, " ") {
			if strings.Contains(ev.NormalizedText, variant) {
				return true
			}
			continue
		}
		if len(variant) >= minCompactMatchLen && strings.Contains(ev.CompactText, variant) {
			return true
		}
	}
	return false
}
