package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/resumify/backend/internal/types"
)

// AtsFriendlyThreshold is the minimum score at which a resume is considered
// safe to submit through an applicant tracking system.
const AtsFriendlyThreshold = 70

const maxDecorativeRunes = 50

// decorativeRunes are ornament characters that tend to scramble column-based
// resume parsers. Their presence never changes the score, only the warnings.
const decorativeRunes = "•●▪◦‣★☆■□▶◆│─═║→►"

// ATS scores machine-readability. The score starts at 100 and each detected
// problem subtracts a fixed amount, floored at zero; purely stylistic findings
// are surfaced as warnings without touching the score.
func ATS(r *types.ParsedResume) *types.AtsReport {
	score := 100
	var critical, warnings []string

	if len(r.Experience) == 0 {
		score -= 30
		critical = append(critical, "No work experience section detected")
	}
	if len(r.Education) == 0 {
		score -= 20
		critical = append(critical, "No education section detected")
	}

	totalSkills := r.Skills.Total()
	if totalSkills == 0 {
		score -= 20
		critical = append(critical, "No recognizable skills detected")
	}

	if r.Email == nil {
		score -= 15
		critical = append(critical, "Missing email address")
	}
	if r.Phone == nil {
		score -= 3
		warnings = append(warnings, "Missing phone number")
	}

	for _, e := range r.Experience {
		if e.Company == nil {
			score -= 10
			warnings = append(warnings, "An experience entry is missing its company name")
			break
		}
	}
	for _, e := range r.Experience {
		if e.StartDate == nil || e.EndDate == nil {
			score -= 5
			warnings = append(warnings, "Experience date ranges are unclear or incomplete")
			break
		}
	}
	for _, e := range r.Experience {
		if len(e.Responsibilities) == 0 {
			score -= 3
			warnings = append(warnings, "Experience entries lack bullet point responsibilities")
			break
		}
	}

	// The missing-skills critical above already covers a zero total.
	if totalSkills > 0 {
		if totalSkills < 5 {
			score -= 15
			warnings = append(warnings, "Fewer than five recognizable skills found")
		} else if totalSkills < 8 {
			score -= 5
			warnings = append(warnings, "Fewer than eight recognizable skills found")
		}
	}

	if r.Summary == nil || utf8.RuneCountInString(*r.Summary) < 30 {
		score -= 5
		warnings = append(warnings, "Summary is missing or too short")
	}

	if strings.Contains(r.Raw, "\t") {
		warnings = append(warnings, "Tab characters can scramble column parsing in older systems")
	}
	if countDecorative(r.Raw) > maxDecorativeRunes {
		warnings = append(warnings, "Heavy decorative symbols may confuse text extraction")
	}

	if score < 0 {
		score = 0
	}

	return &types.AtsReport{
		Score:           score,
		AtsFriendly:     score >= AtsFriendlyThreshold,
		Grade:           atsGrade(score),
		CriticalIssues:  critical,
		Warnings:        warnings,
		Recommendations: Recommend(append(append([]string{}, critical...), warnings...)),
		KeywordDensity:  keywordDensity(r, totalSkills),
	}
}

func countDecorative(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(decorativeRunes, r) {
			count++
		}
	}
	return count
}

func keywordDensity(r *types.ParsedResume, totalSkills int) types.KeywordDensity {
	words := len(strings.Fields(r.Raw))
	per100 := 0.0
	if words > 0 {
		per100 = math.Round(float64(totalSkills)/float64(words)*100*100) / 100
	}
	return types.KeywordDensity{
		TotalSkills:       totalSkills,
		CategoriesCovered: r.Skills.CategoriesCovered(),
		WordCount:         words,
		SkillsPer100Words: per100,
	}
}

func atsGrade(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 60:
		return "Poor"
	default:
		return "Fail"
	}
}
