// Package parsing implements the deterministic resume extraction engine:
// normalization, section segmentation, date resolution, entity extraction,
// and skill classification over plain resume text.
package parsing

import "strings"

// Document is the normalized view of a resume that every extraction stage
// reads. AllLines keeps blank lines because section bodies are chunked on
// blank-line gaps; Lines drops them for header scanning and joined searches.
type Document struct {
	Raw         string   // input text exactly as received
	AllLines    []string // trimmed lines, blanks preserved
	Lines       []string // trimmed lines, blanks removed
	Joined      string   // Lines joined with newlines
	JoinedLower string
}

// NewDocument normalizes raw resume text into its line and joined views.
func NewDocument(text string) *Document {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	rawLines := strings.Split(normalized, "\n")
	allLines := make([]string, len(rawLines))
	lines := make([]string, 0, len(rawLines))
	for i, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		allLines[i] = trimmed
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	joined := strings.Join(lines, "\n")
	return &Document{
		Raw:         text,
		AllLines:    allLines,
		Lines:       lines,
		Joined:      joined,
		JoinedLower: strings.ToLower(joined),
	}
}
