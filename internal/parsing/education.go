package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/resumify/backend/internal/types"
)

const minEducationChunkChars = 20

var (
	degreePattern       = regexp.MustCompile(`(?i)bachelor|b\.s\.|b\.sc|bsc|b\.tech|btech|b\.e\.|be`)
	universityOfPattern = regexp.MustCompile(`(University of [A-Za-z ,]+)`)
	anyLetterPattern    = regexp.MustCompile(`[A-Za-z]`)
)

// parseEducation builds education entries from the education section body.
// Chunks without a degree keyword are skipped entirely; the degree line is
// the first line carrying the keyword, the institution the first of the next
// two lines containing a letter, overridden by a "University of ..." capture
// anywhere in the chunk.
func parseEducation(doc *Document) []types.EducationEntry {
	entries := []types.EducationEntry{}

	_, body, _ := Segment(doc, educationAnchors, educationTerminators)
	if body == "" {
		return entries
	}

	for _, chunk := range chunkSplitPattern.Split(body, -1) {
		chunk = strings.TrimSpace(chunk)
		if utf8.RuneCountInString(chunk) < minEducationChunkChars {
			continue
		}
		if !degreePattern.MatchString(chunk) {
			continue
		}

		lines := nonEmptyLines(chunk)
		if len(lines) == 0 {
			continue
		}

		degree := lines[0]
		for _, line := range lines {
			if degreePattern.MatchString(line) {
				degree = line
				break
			}
		}

		var institution *string
		for i := 1; i < len(lines) && i < 3; i++ {
			if anyLetterPattern.MatchString(lines[i]) {
				institution = types.String(lines[i])
				break
			}
		}
		if m := universityOfPattern.FindStringSubmatch(chunk); m != nil {
			institution = types.String(strings.TrimSpace(m[1]))
		}

		entry := types.EducationEntry{
			Degree:           degree,
			Institution:      institution,
			Year:             yearPattern.FindString(chunk),
			DegreeConfidence: types.ConfidenceDegree,
		}
		if institution != nil {
			entry.InstitutionConfidence = types.ConfidenceInstitution
		}

		entries = append(entries, entry)
		if len(entries) >= types.MaxEducationEntries {
			break
		}
	}

	return entries
}
