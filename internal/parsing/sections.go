package parsing

import "strings"

// Section anchors and terminators. A section starts after the first line
// containing an anchor keyword and runs until the first later line containing
// a terminator keyword. The two sets must stay disjoint per section.
var (
	experienceAnchors     = []string{"work experience", "professional experience", "experience"}
	experienceTerminators = []string{"education", "skills"}

	educationAnchors     = []string{"education"}
	educationTerminators = []string{"skills", "experience"}
)

// Segment splits a document around the first line matching any anchor
// keyword (case-insensitive substring). It returns the text before the anchor
// line, the section body, and the text from the terminating line onward. The
// body preserves interior blank lines. A missing anchor yields an empty body,
// which callers treat as "section absent".
func Segment(doc *Document, anchors, terminators []string) (before, body, after string) {
	anchorIdx := -1
	for i, line := range doc.AllLines {
		if containsAny(strings.ToLower(line), anchors) {
			anchorIdx = i
			break
		}
	}
	if anchorIdx == -1 {
		return strings.Join(doc.AllLines, "\n"), "", ""
	}

	endIdx := len(doc.AllLines)
	for i := anchorIdx + 1; i < len(doc.AllLines); i++ {
		if containsAny(strings.ToLower(doc.AllLines[i]), terminators) {
			endIdx = i
			break
		}
	}

	before = strings.Join(doc.AllLines[:anchorIdx], "\n")
	body = strings.Join(doc.AllLines[anchorIdx+1:endIdx], "\n")
	after = strings.Join(doc.AllLines[endIdx:], "\n")
	return before, body, after
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
