package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument_NormalizesLineEndings(t *testing.T) {
	doc := NewDocument("John Doe\r\nEngineer\r\n\r\nAustin, TX")

	assert.Equal(t, []string{"John Doe", "Engineer", "", "Austin, TX"}, doc.AllLines)
	assert.Equal(t, []string{"John Doe", "Engineer", "Austin, TX"}, doc.Lines)
	assert.Equal(t, "John Doe\nEngineer\nAustin, TX", doc.Joined)
}

func TestNewDocument_TrimsLines(t *testing.T) {
	doc := NewDocument("  John Doe  \n\t\n  Engineer")

	assert.Equal(t, []string{"John Doe", "", "Engineer"}, doc.AllLines)
	assert.Equal(t, []string{"John Doe", "Engineer"}, doc.Lines)
}

func TestNewDocument_LowercaseView(t *testing.T) {
	doc := NewDocument("Senior Engineer\nPython and AWS")

	assert.Equal(t, "senior engineer\npython and aws", doc.JoinedLower)
}

func TestNewDocument_EmptyInput(t *testing.T) {
	doc := NewDocument("")

	assert.Empty(t, doc.Lines)
	assert.Equal(t, "", doc.Joined)
	assert.Equal(t, "", doc.Raw)
}

func TestNewDocument_KeepsRawVerbatim(t *testing.T) {
	raw := "  Name\r\n\twith tabs\t\r\n"
	doc := NewDocument(raw)

	assert.Equal(t, raw, doc.Raw)
}
