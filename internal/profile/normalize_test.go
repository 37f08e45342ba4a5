package profile

import (
	"testing"

	"github.com/jonathan/resume-evaluator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfileTrimsAndDedupes(t *testing.T) {
	p := &types.RawProfile{
		Contact: types.Contact{
			FullName: "  Ada Lovelace ",
			Email:    " ada@example.com",
			Links:    []string{"https://example.com", " https://example.com ", ""},
		},
		Summary: "  Backend engineer.  ",
		Skills:  []string{"Go", " go ", "PostgreSQL", "postgresql", "Docker"},
	}

	NormalizeProfile(p)

	assert.Equal(t, "Ada Lovelace", p.Contact.FullName)
	assert.Equal(t, "ada@example.com", p.Contact.Email)
	assert.Equal(t, []string{"https://example.com"}, p.Contact.Links)
	assert.Equal(t, "Backend engineer.", p.Summary)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, p.Skills)
}

func TestNormalizeProfileKeepsFirstSpelling(t *testing.T) {
	p := &types.RawProfile{Skills: []string{"kubernetes", "Kubernetes", "KUBERNETES"}}
	NormalizeProfile(p)
	assert.Equal(t, []string{"kubernetes"}, p.Skills)
}

func TestNormalizeProfileDates(t *testing.T) {
	p := &types.RawProfile{
		Experience: []types.ExperienceEntry{
			{Company: " Acme ", Title: " Engineer ", StartDate: "janvier 2020", EndDate: "en cours",
				Highlights: []string{" Built stuff ", "built stuff", ""}},
		},
		Education: []types.EducationEntry{
			{School: "ENS", StartDate: " 2014 ", EndDate: "aujourd'hui"},
		},
	}

	NormalizeProfile(p)

	assert.Equal(t, "Acme", p.Experience[0].Company)
	assert.Equal(t, "january 2020", p.Experience[0].StartDate)
	assert.Equal(t, "Present", p.Experience[0].EndDate)
	assert.Equal(t, []string{"Built stuff"}, p.Experience[0].Highlights)
	assert.Equal(t, "2014", p.Education[0].StartDate)
	assert.Equal(t, "Present", p.Education[0].EndDate)
}

func TestNormalizeProfileNil(t *testing.T) {
	assert.NotPanics(t, func() { NormalizeProfile(nil) })
	assert.NotPanics(t, func() { NormalizeContent(nil) })
}

func TestNormalizeContent(t *testing.T) {
	c := &types.GeneratedContent{
		RawProfile: types.RawProfile{Summary: "  hi  "},
		Languages:  []string{"French ", "french", "English"},
		Qualities:  []string{" Curious "},
		Interests:  []string{},
	}

	NormalizeContent(c)

	assert.Equal(t, "hi", c.Summary)
	assert.Equal(t, []string{"French", "English"}, c.Languages)
	assert.Equal(t, []string{"Curious"}, c.Qualities)
	assert.Empty(t, c.Interests)
}
