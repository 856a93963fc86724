// Package schemas holds the JSON Schema documents describing the service's
// structured payloads, embedded at compile time.
package schemas

import _ "embed"

//go:embed parsed_resume.schema.json
var parsedResume string

// ParsedResume returns the JSON Schema for the structured resume payload
// produced by extraction.
func ParsedResume() string {
	return parsedResume
}
