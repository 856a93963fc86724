package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumify/backend/internal/types"
)

func TestATS_StrongResumeIsFriendly(t *testing.T) {
	report := ATS(strongResume())

	assert.Equal(t, 100, report.Score)
	assert.True(t, report.AtsFriendly)
	assert.Equal(t, "Excellent", report.Grade)
	assert.Empty(t, report.CriticalIssues)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, genericTips, report.Recommendations)
}

func TestATS_FailureScenario(t *testing.T) {
	r := &types.ParsedResume{Raw: "just a name and nothing else"}
	r.Normalize()

	report := ATS(r)

	assert.False(t, report.AtsFriendly)
	assert.LessOrEqual(t, report.Score, 30)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.Equal(t, "Fail", report.Grade)

	require.GreaterOrEqual(t, len(report.CriticalIssues), 3)
	assert.Contains(t, report.CriticalIssues, "No work experience section detected")
	assert.Contains(t, report.CriticalIssues, "No education section detected")
	assert.Contains(t, report.CriticalIssues, "No recognizable skills detected")
	assert.Contains(t, report.CriticalIssues, "Missing email address")
}

func TestATS_DecrementAccounting(t *testing.T) {
	r := &types.ParsedResume{
		ContactInfo: types.ContactInfo{
			Email:   types.String("a@b.co"),
			Summary: types.String(strings.Repeat("Reliable systems engineer. ", 2)),
		},
		Experience: []types.ExperienceEntry{
			{JobTitle: "Engineer"}, // no company, no dates, no bullets
		},
		Education: []types.EducationEntry{{Degree: "B.Sc"}},
		Skills:    types.SkillSet{ProgrammingLanguages: []string{"Go", "Java", "Python"}},
		Raw:       "plain resume text",
	}
	r.Normalize()

	report := ATS(r)

	// 100 -3 phone -10 company -5 dates -3 bullets -15 skill count.
	assert.Equal(t, 64, report.Score)
	assert.False(t, report.AtsFriendly)
	assert.Equal(t, "Poor", report.Grade)
	assert.Empty(t, report.CriticalIssues)
	assert.Contains(t, report.Warnings, "An experience entry is missing its company name")
	assert.Contains(t, report.Warnings, "Experience date ranges are unclear or incomplete")
	assert.Contains(t, report.Warnings, "Fewer than five recognizable skills found")
}

func TestATS_SkillCountTiers(t *testing.T) {
	base := func(total int) *types.ParsedResume {
		skills := make([]string, total)
		for i := range skills {
			skills[i] = string(rune('a'+i)) + "-skill"
		}
		r := strongResume()
		r.Skills = types.SkillSet{DevTools: skills}
		return r
	}

	sixSkills := ATS(base(6))
	assert.Equal(t, 95, sixSkills.Score)
	assert.Contains(t, sixSkills.Warnings, "Fewer than eight recognizable skills found")

	noSkills := ATS(base(0))
	assert.Contains(t, noSkills.CriticalIssues, "No recognizable skills detected")
	for _, w := range noSkills.Warnings {
		assert.NotContains(t, w, "Fewer than")
	}
}

func TestATS_StylisticWarningsDoNotChangeScore(t *testing.T) {
	clean := strongResume()
	cleanReport := ATS(clean)

	tabbed := strongResume()
	tabbed.Raw = "name\twith\ttabs " + tabbed.Raw
	tabbedReport := ATS(tabbed)

	assert.Equal(t, cleanReport.Score, tabbedReport.Score)
	assert.Contains(t, tabbedReport.Warnings, "Tab characters can scramble column parsing in older systems")

	decorated := strongResume()
	decorated.Raw = strings.Repeat("•", maxDecorativeRunes+1) + decorated.Raw
	decoratedReport := ATS(decorated)

	assert.Equal(t, cleanReport.Score, decoratedReport.Score)
	assert.Contains(t, decoratedReport.Warnings, "Heavy decorative symbols may confuse text extraction")
}

func TestKeywordDensity(t *testing.T) {
	r := &types.ParsedResume{
		Skills: types.SkillSet{
			ProgrammingLanguages: []string{"Go", "Python"},
			Databases:            []string{"Redis", "MySQL"},
		},
		Raw: "one two three four five six seven eight",
	}

	d := keywordDensity(r, r.Skills.Total())

	assert.Equal(t, 4, d.TotalSkills)
	assert.Equal(t, 2, d.CategoriesCovered)
	assert.Equal(t, 8, d.WordCount)
	assert.InDelta(t, 50.0, d.SkillsPer100Words, 0.001)
}

func TestKeywordDensity_EmptyText(t *testing.T) {
	r := &types.ParsedResume{}

	d := keywordDensity(r, 0)

	assert.Zero(t, d.WordCount)
	assert.Zero(t, d.SkillsPer100Words)
}
