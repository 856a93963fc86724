package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/resumify/backend/internal/types"
)

const (
	minChunkChars  = 30
	minBulletChars = 25
)

var (
	chunkSplitPattern = regexp.MustCompile(`\n{2,}`)
	anyDigitPattern   = regexp.MustCompile(`\d`)
	// Lines that merely echo section headings are not responsibilities.
	headingEchoPattern = regexp.MustCompile(`(?i)experience|responsibilit|summary|education|skills`)
)

// parseExperience builds experience entries from the experience section body.
// Each blank-line-delimited chunk becomes at most one entry: first line job
// title, second line company when it carries no digits, dates resolved from
// the whole chunk, remaining lines filtered into responsibilities.
func parseExperience(doc *Document) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	_, body, _ := Segment(doc, experienceAnchors, experienceTerminators)
	if body == "" {
		return entries
	}

	for _, chunk := range chunkSplitPattern.Split(body, -1) {
		chunk = strings.TrimSpace(chunk)
		if utf8.RuneCountInString(chunk) < minChunkChars {
			continue
		}

		lines := nonEmptyLines(chunk)
		if len(lines) == 0 {
			continue
		}

		entry := types.ExperienceEntry{
			JobTitle:         lines[0],
			Responsibilities: extractResponsibilities(lines),
		}
		if len(lines) > 1 {
			second := lines[1]
			if !yearPattern.MatchString(second) && !anyDigitPattern.MatchString(second) {
				entry.Company = types.String(second)
			}
		}
		entry.StartDate, entry.EndDate = ResolveDateRange(chunk)

		if entry.JobTitle != "" {
			entry.JobTitleConfidence = types.ConfidenceJobTitle
		}
		if entry.Company != nil {
			entry.CompanyConfidence = types.ConfidenceCompany
		}

		entries = append(entries, entry)
		if len(entries) >= types.MaxExperienceEntries {
			break
		}
	}

	return entries
}

// extractResponsibilities filters the lines after title and company into
// bullet points: bullet markers stripped, short lines and heading echoes
// dropped, capped at the per-entry maximum.
func extractResponsibilities(lines []string) []string {
	bullets := []string{}
	if len(lines) <= 2 {
		return bullets
	}
	for _, line := range lines[2:] {
		clean := strings.Trim(line, "•- \t")
		if utf8.RuneCountInString(clean) < minBulletChars {
			continue
		}
		if headingEchoPattern.MatchString(clean) {
			continue
		}
		bullets = append(bullets, clean)
		if len(bullets) >= types.MaxResponsibilities {
			break
		}
	}
	return bullets
}

func nonEmptyLines(chunk string) []string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
