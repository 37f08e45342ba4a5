package rendering

// SectionKind identifies one renderable section of the final document.
type SectionKind string

const (
	SectionSummary        SectionKind = "summary"
	SectionSkills         SectionKind = "skills"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
	SectionQualities      SectionKind = "qualities"
	SectionInterests      SectionKind = "interests"
)

// DefaultTemplate is the template key used when a candidate has none set or
// names an unknown one.
const DefaultTemplate = "classic"

// baselineOrder is the classic section sequence. Every template order is a
// permutation or subset of these kinds.
var baselineOrder = []SectionKind{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionQualities,
	SectionInterests,
}

var templateOrders = map[string][]SectionKind{
	"classic": baselineOrder,
	// Experience-first layout for senior profiles.
	"compact": {
		SectionSummary,
		SectionExperience,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
		SectionProjects,
		SectionLanguages,
		SectionInterests,
	},
	// Education and projects lead for early-career candidates.
	"graduate": {
		SectionSummary,
		SectionEducation,
		SectionProjects,
		SectionSkills,
		SectionExperience,
		SectionCertifications,
		SectionLanguages,
		SectionQualities,
		SectionInterests,
	},
}

// SectionOrder returns the section sequence for a template key. Unknown or
// empty keys fall back to the classic order so rendering never fails on a
// bad key.
func SectionOrder(templateKey string) []SectionKind {
	if order, ok := templateOrders[templateKey]; ok {
		return order
	}
	return baselineOrder
}

// sectionTitles maps section kinds to their document headings.
var sectionTitles = map[SectionKind]string{
	SectionSummary:        "Summary",
	SectionSkills:         "Skills",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionLanguages:      "Languages",
	SectionQualities:      "Qualities",
	SectionInterests:      "Interests",
}
