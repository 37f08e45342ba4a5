// Package rendering produces the final markdown resume document from
// polished content. Sections are emitted in the template's order; empty
// sections are skipped entirely.
package rendering

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Render builds the markdown document for the content, emitting sections in
// the given order. The result always ends with exactly one newline.
func Render(order []SectionKind, c *types.GeneratedContent) string {
	var sb strings.Builder

	writeHeader(&sb, c)
	for _, kind := range order {
		writeSection(&sb, kind, c)
	}

	doc := blankRuns.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimRight(doc, "\n") + "\n"
}

// RenderTemplate renders the content using the section order of the named
// template.
func RenderTemplate(templateKey string, c *types.GeneratedContent) string {
	return Render(SectionOrder(templateKey), c)
}

// writeHeader emits the candidate name and a compact contact line.
func writeHeader(sb *strings.Builder, c *types.GeneratedContent) {
	if name := strings.TrimSpace(c.Contact.FullName); name != "" {
		fmt.Fprintf(sb, "# %s\n\n", name)
	}

	parts := make([]string, 0, 4)
	for _, field := range []string{c.Contact.Email, c.Contact.Phone, c.Contact.Location} {
		if v := strings.TrimSpace(field); v != "" {
			parts = append(parts, v)
		}
	}
	parts = append(parts, c.Contact.Links...)
	if len(parts) > 0 {
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n\n")
	}
}

func writeSection(sb *strings.Builder, kind SectionKind, c *types.GeneratedContent) {
	switch kind {
	case SectionSummary:
		if c.Summary != "" {
			writeTitle(sb, kind)
			sb.WriteString(c.Summary)
			sb.WriteString("\n\n")
		}
	case SectionSkills:
		writeList(sb, kind, c.Skills)
	case SectionExperience:
		writeExperience(sb, c.Experience)
	case SectionEducation:
		writeEducation(sb, c.Education)
	case SectionProjects:
		writeProjects(sb, c.Projects)
	case SectionCertifications:
		writeList(sb, kind, c.Certifications)
	case SectionLanguages:
		writeList(sb, kind, c.Languages)
	case SectionQualities:
		writeList(sb, kind, c.Qualities)
	case SectionInterests:
		writeList(sb, kind, c.Interests)
	}
}

func writeTitle(sb *strings.Builder, kind SectionKind) {
	fmt.Fprintf(sb, "## %s\n\n", sectionTitles[kind])
}

func writeList(sb *strings.Builder, kind SectionKind, items []string) {
	if len(items) == 0 {
		return
	}
	writeTitle(sb, kind)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

func writeExperience(sb *strings.Builder, entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	writeTitle(sb, SectionExperience)
	for _, entry := range entries {
		heading := joinNonEmpty(" — ", entry.Title, entry.Company)
		if heading == "" {
			heading = "Role"
		}
		fmt.Fprintf(sb, "**%s**", heading)
		if span := dateSpan(entry.StartDate, entry.EndDate); span != "" {
			fmt.Fprintf(sb, " (%s)", span)
		}
		sb.WriteString("\n\n")
		for _, highlight := range entry.Highlights {
			fmt.Fprintf(sb, "- %s\n", highlight)
		}
		if len(entry.Highlights) > 0 {
			sb.WriteString("\n")
		}
	}
}

func writeEducation(sb *strings.Builder, entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	writeTitle(sb, SectionEducation)
	for _, entry := range entries {
		line := joinNonEmpty(" — ", entry.Degree, entry.School)
		if line == "" {
			continue
		}
		if span := dateSpan(entry.StartDate, entry.EndDate); span != "" {
			line += " (" + span + ")"
		}
		fmt.Fprintf(sb, "- %s\n", line)
	}
	sb.WriteString("\n")
}

func writeProjects(sb *strings.Builder, projects []types.Project) {
	if len(projects) == 0 {
		return
	}
	writeTitle(sb, SectionProjects)
	for _, project := range projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		name := project.Name
		if name == "" {
			name = "Project"
		}
		fmt.Fprintf(sb, "**%s**\n\n", name)
		if project.Description != "" {
			sb.WriteString(project.Description)
			sb.WriteString("\n\n")
		}
		for _, link := range project.Links {
			fmt.Fprintf(sb, "- %s\n", link)
		}
		if len(project.Links) > 0 {
			sb.WriteString("\n")
		}
	}
}

// dateSpan formats a start/end pair, tolerating either side being empty.
func dateSpan(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	default:
		return start + " – " + end
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
