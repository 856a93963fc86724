package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumify/backend/internal/types"
)

func TestParseExperience_TwoJobs(t *testing.T) {
	text := strings.Join([]string{
		"WORK EXPERIENCE",
		"",
		"Software Engineer",
		"Acme Corp",
		"2018 - 2021",
		"• Led migration of legacy systems to cloud-hosted container platforms",
		"• Mentored four new hires through their first production releases",
		"",
		"Junior Developer",
		"Beta LLC",
		"2016 - 2018",
		"- Maintained internal tooling and deployment scripts used by three teams",
	}, "\n")

	entries := parseExperience(NewDocument(text))

	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Software Engineer", first.JobTitle)
	require.NotNil(t, first.Company)
	assert.Equal(t, "Acme Corp", *first.Company)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2018", *first.StartDate)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, "2021", *first.EndDate)
	assert.Equal(t, []string{
		"Led migration of legacy systems to cloud-hosted container platforms",
		"Mentored four new hires through their first production releases",
	}, first.Responsibilities)
	assert.Equal(t, types.ConfidenceJobTitle, first.JobTitleConfidence)
	assert.Equal(t, types.ConfidenceCompany, first.CompanyConfidence)

	second := entries[1]
	assert.Equal(t, "Junior Developer", second.JobTitle)
	require.NotNil(t, second.Company)
	assert.Equal(t, "Beta LLC", *second.Company)
	assert.Equal(t, []string{
		"Maintained internal tooling and deployment scripts used by three teams",
	}, second.Responsibilities)
}

func TestParseExperience_CompanyLineWithDigitsRejected(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"",
		"Software Engineer",
		"2019 - 2022",
		"Shipped the billing pipeline rewrite across four release cycles",
	}, "\n")

	entries := parseExperience(NewDocument(text))

	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Company)
	assert.Zero(t, entries[0].CompanyConfidence)
	require.NotNil(t, entries[0].StartDate)
	assert.Equal(t, "2019", *entries[0].StartDate)
}

func TestParseExperience_ShortChunksSkipped(t *testing.T) {
	text := "EXPERIENCE\n\nEngineer\nAcme\n\ntiny"

	entries := parseExperience(NewDocument(text))

	// "tiny" is under the chunk minimum; "Engineer\nAcme" is too.
	assert.Empty(t, entries)
}

func TestParseExperience_SectionAbsent(t *testing.T) {
	entries := parseExperience(NewDocument("Jane Doe\njane@x.com\nNo sections at all"))

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseExperience_EntryCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("WORK EXPERIENCE\n")
	for i := 1; i <= types.MaxExperienceEntries+2; i++ {
		fmt.Fprintf(&b, "\nBackend Engineer Number %d\nExample Company\nShipped meaningful backend work for this employer\n", i)
	}

	entries := parseExperience(NewDocument(b.String()))

	assert.Len(t, entries, types.MaxExperienceEntries)
}

func TestExtractResponsibilities_FiltersAndCaps(t *testing.T) {
	lines := []string{
		"Engineer",
		"Acme",
		"• short one",
		"• Echoes the skills heading so it must not count here",
		"2019 - 2021",
	}
	for i := 0; i < types.MaxResponsibilities+3; i++ {
		lines = append(lines, fmt.Sprintf("- Delivered project number %02d end to end with customer sign-off", i))
	}

	bullets := extractResponsibilities(lines)

	assert.Len(t, bullets, types.MaxResponsibilities)
	for _, b := range bullets {
		assert.NotContains(t, b, "skills")
		assert.False(t, strings.HasPrefix(b, "-"), "bullet marker should be stripped: %q", b)
	}
}

func TestParseExperience_StopsAtEducationSection(t *testing.T) {
	text := strings.Join([]string{
		"WORK EXPERIENCE",
		"",
		"Software Engineer",
		"Acme Corp",
		"Shipped the payments platform used by every enterprise customer",
		"",
		"EDUCATION",
		"",
		"Bachelor of Science",
		"State University, Springfield",
	}, "\n")

	entries := parseExperience(NewDocument(text))

	require.Len(t, entries, 1)
	assert.Equal(t, "Software Engineer", entries[0].JobTitle)
}
