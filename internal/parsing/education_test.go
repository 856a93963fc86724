package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumify/backend/internal/types"
)

func TestParseEducation_DegreeWithInstitutionAndYear(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"",
		"Bachelor of Science in Computer Science",
		"University of Texas, Austin",
		"2014 - 2018",
	}, "\n")

	entries := parseEducation(NewDocument(text))

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", entry.Degree)
	require.NotNil(t, entry.Institution)
	assert.Equal(t, "University of Texas, Austin", *entry.Institution)
	assert.Equal(t, "2014", entry.Year)
	assert.Equal(t, types.ConfidenceDegree, entry.DegreeConfidence)
	assert.Equal(t, types.ConfidenceInstitution, entry.InstitutionConfidence)
}

func TestParseEducation_UniversityOfOverridesNearbyLine(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"",
		"B.Sc in Software Engineering, University of Lagos",
		"Graduated with honors",
	}, "\n")

	entries := parseEducation(NewDocument(text))

	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Institution)
	assert.Equal(t, "University of Lagos", *entries[0].Institution)
}

func TestParseEducation_ChunkWithoutDegreeSkipped(t *testing.T) {
	text := strings.Join([]string{
		"EDUCATION",
		"",
		"Attended various workshops",
		"on cloud and data platforms",
	}, "\n")

	entries := parseEducation(NewDocument(text))

	assert.Empty(t, entries)
}

func TestParseEducation_MissingYearIsEmptyString(t *testing.T) {
	text := "EDUCATION\n\nBachelor of Technology in Electronics\nSpringfield Institute"

	entries := parseEducation(NewDocument(text))

	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Year)
}

func TestParseEducation_EntryCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("EDUCATION\n")
	for i := 1; i <= types.MaxEducationEntries+1; i++ {
		fmt.Fprintf(&b, "\nBachelor of Science Number %d\nSpringfield College Campus\n", i)
	}

	entries := parseEducation(NewDocument(b.String()))

	assert.Len(t, entries, types.MaxEducationEntries)
}

func TestParseEducation_SectionAbsent(t *testing.T) {
	entries := parseEducation(NewDocument("Jane Doe\nSoftware Engineer\nNothing more"))

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
