package evaluation

import (
	"fmt"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// completenessCheck awards fixed points when a profile field is present and
// well-formed. Modeled as data so the weight table can be tuned and tested
// without touching the scoring algorithm.
type completenessCheck struct {
	label   string
	points  float64
	present func(*types.RawProfile) bool
}

var completenessChecks = []completenessCheck{
	{"fullName", 10, func(p *types.RawProfile) bool { return p.Contact.FullName != "" }},
	{"email", 20, func(p *types.RawProfile) bool { return p.Contact.Email != "" }},
	{"phone", 10, func(p *types.RawProfile) bool { return p.Contact.Phone != "" }},
	{"location", 10, func(p *types.RawProfile) bool { return p.Contact.Location != "" }},
	{"links", 5, func(p *types.RawProfile) bool { return len(p.Contact.Links) > 0 }},
	{"summary", 10, func(p *types.RawProfile) bool { return p.Summary != "" }},
	{"experience", 15, func(p *types.RawProfile) bool { return len(p.Experience) > 0 }},
	{"experienceDates", 10, allExperienceDated},
	{"education", 10, func(p *types.RawProfile) bool { return len(p.Education) > 0 }},
}

func init() {
	total := 0.0
	for _, check := range completenessChecks {
		total += check.points
	}
	if total != 100 {
		panic(fmt.Sprintf("completeness weights must sum to 100, got %v", total))
	}
}

func allExperienceDated(p *types.RawProfile) bool {
	if len(p.Experience) == 0 {
		return false
	}
	for _, exp := range p.Experience {
		if exp.StartDate == "" || exp.EndDate == "" {
			return false
		}
	}
	return true
}

// scoreCompleteness returns the summed points and the labels of every failed
// check. The experienceDates label is only reported when experience exists
// but is missing dates; with no experience at all the experience label alone
// carries the gap.
func scoreCompleteness(p *types.RawProfile) (float64, []string) {
	total := 0.0
	missing := make([]string, 0)
	for _, check := range completenessChecks {
		if check.present(p) {
			total += check.points
			continue
		}
		if check.label == "experienceDates" && len(p.Experience) == 0 {
			continue
		}
		missing = append(missing, check.label)
	}
	return total, missing
}
