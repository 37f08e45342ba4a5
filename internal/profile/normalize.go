// Package profile cleans up decoded candidate profiles before evaluation and
// rendering: whitespace trimming, order-preserving deduplication, and date
// text normalization.
package profile

import (
	"strings"

	"github.com/jonathan/resume-evaluator/internal/evaluation"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// NormalizeProfile sanitizes a freshly decoded profile in place. All string
// fields are trimmed, list fields are deduplicated case-insensitively with
// the first-seen spelling and order kept, and experience and education dates
// are rewritten to canonical text.
func NormalizeProfile(p *types.RawProfile) {
	if p == nil {
		return
	}

	p.Contact.FullName = strings.TrimSpace(p.Contact.FullName)
	p.Contact.Email = strings.TrimSpace(p.Contact.Email)
	p.Contact.Phone = strings.TrimSpace(p.Contact.Phone)
	p.Contact.Location = strings.TrimSpace(p.Contact.Location)
	p.Contact.Links = dedupeStrings(p.Contact.Links)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Skills = dedupeStrings(p.Skills)
	p.Certifications = dedupeStrings(p.Certifications)

	for i := range p.Experience {
		exp := &p.Experience[i]
		exp.Company = strings.TrimSpace(exp.Company)
		exp.Title = strings.TrimSpace(exp.Title)
		exp.StartDate = evaluation.NormalizeDateText(exp.StartDate)
		exp.EndDate = evaluation.NormalizeDateText(exp.EndDate)
		exp.Highlights = dedupeStrings(exp.Highlights)
	}

	for i := range p.Education {
		edu := &p.Education[i]
		edu.School = strings.TrimSpace(edu.School)
		edu.Degree = strings.TrimSpace(edu.Degree)
		edu.StartDate = evaluation.NormalizeDateText(edu.StartDate)
		edu.EndDate = evaluation.NormalizeDateText(edu.EndDate)
	}

	for i := range p.Projects {
		proj := &p.Projects[i]
		proj.Name = strings.TrimSpace(proj.Name)
		proj.Description = strings.TrimSpace(proj.Description)
		proj.Links = dedupeStrings(proj.Links)
	}
}

// NormalizeContent sanitizes polished generated content, including the
// profile it embeds.
func NormalizeContent(c *types.GeneratedContent) {
	if c == nil {
		return
	}
	NormalizeProfile(&c.RawProfile)
	c.Languages = dedupeStrings(c.Languages)
	c.Qualities = dedupeStrings(c.Qualities)
	c.Interests = dedupeStrings(c.Interests)
}

// dedupeStrings trims every entry and drops empties and case-insensitive
// duplicates, keeping the first spelling and the original order.
func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
