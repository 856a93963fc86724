// Package analysis scores fully parsed resumes: a content quality report on
// an additive 0-100 scale and an ATS readability report that decrements from
// 100. Both are pure functions of the parsed record.
package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/resumify/backend/internal/types"
)

// Quality category maxima. They sum to 100, so the total needs no clamping.
const (
	maxContactPoints    = 20
	maxExperiencePoints = 20
	maxDepthBonus       = 10
	maxEducationPoints  = 15
	maxSkillPoints      = 20
	maxSummaryPoints    = 5
	maxExtrasPoints     = 10

	maxStrengths = 5
	maxIssues    = 7

	longSummaryChars = 100
	okSummaryChars   = 30
)

// Quality scores how complete and substantive a parsed resume is. Points are
// added per category; issues collect what is missing and feed the
// recommendation buckets.
func Quality(r *types.ParsedResume) *types.QualityReport {
	var issues, strengths []string
	breakdown := make(map[string]types.CategoryScore)
	rawLower := strings.ToLower(r.Raw)

	contact := 0
	if r.Email != nil {
		contact += 10
	} else {
		issues = append(issues, "Missing email address")
	}
	if r.Phone != nil {
		contact += 5
	} else {
		issues = append(issues, "Missing phone number")
	}
	if containsAny(rawLower, "linkedin", "github", "portfolio") {
		contact += 5
	} else {
		issues = append(issues, "No LinkedIn, GitHub, or portfolio links found")
	}
	if r.Email != nil && r.Phone != nil {
		strengths = append(strengths, "Complete contact information")
	}
	breakdown["contact_info"] = types.CategoryScore{Score: contact, Max: maxContactPoints}

	experience := experienceTier(len(r.Experience))
	if len(r.Experience) == 0 {
		issues = append(issues, "No work experience entries detected")
	}
	if len(r.Experience) >= 3 {
		strengths = append(strengths, "Solid work history with three or more roles")
	}
	breakdown["experience"] = types.CategoryScore{Score: experience, Max: maxExperiencePoints}

	depth, thinEntries := depthBonus(r)
	if thinEntries {
		issues = append(issues, "Some experience entries have few or no bullet points")
	}
	if depth >= 8 {
		strengths = append(strengths, "Experience entries carry detailed, technology-rich bullets")
	}
	breakdown["experience_depth"] = types.CategoryScore{Score: depth, Max: maxDepthBonus}

	education := 0
	if len(r.Education) > 0 {
		education = maxEducationPoints
		strengths = append(strengths, "Education credentials listed")
	} else {
		issues = append(issues, "No education entries detected")
	}
	breakdown["education"] = types.CategoryScore{Score: education, Max: maxEducationPoints}

	skills := skillTier(r.Skills.Total())
	if r.Skills.Total() < 3 {
		issues = append(issues, "Few or no recognizable technical skills")
	}
	if r.Skills.Total() >= 10 {
		strengths = append(strengths, "Broad technical skill coverage")
	}
	breakdown["skills"] = types.CategoryScore{Score: skills, Max: maxSkillPoints}

	summary := summaryPoints(r.Summary)
	if summary == 0 {
		issues = append(issues, "Summary is missing or too short")
	}
	breakdown["summary"] = types.CategoryScore{Score: summary, Max: maxSummaryPoints}

	extras := 0
	if strings.Contains(rawLower, "certifi") {
		extras += 5
	} else {
		issues = append(issues, "No certifications mentioned")
	}
	if strings.Contains(rawLower, "project") {
		extras += 5
	} else {
		issues = append(issues, "No projects mentioned")
	}
	breakdown["extras"] = types.CategoryScore{Score: extras, Max: maxExtrasPoints}

	score := contact + experience + depth + education + skills + summary + extras

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	recommendations := Recommend(issues)
	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}

	return &types.QualityReport{
		Score:           score,
		Grade:           qualityGrade(score),
		Breakdown:       breakdown,
		Strengths:       strengths,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

func experienceTier(count int) int {
	switch {
	case count >= 3:
		return 20
	case count == 2:
		return 15
	case count == 1:
		return 10
	default:
		return 0
	}
}

// depthBonus rewards well-developed entries: bullet depth and mentions of the
// resume's own extracted skills, bounded by the category maximum. It also
// reports whether any entry was thin (fewer than two bullets).
func depthBonus(r *types.ParsedResume) (bonus int, thin bool) {
	skills := r.Skills.All()
	for _, e := range r.Experience {
		switch {
		case len(e.Responsibilities) >= 4:
			bonus += 3
		case len(e.Responsibilities) >= 2:
			bonus += 2
		default:
			thin = true
		}
		if mentionsAnySkill(e, skills) {
			bonus += 2
		}
	}
	if bonus > maxDepthBonus {
		bonus = maxDepthBonus
	}
	if len(r.Experience) == 0 {
		thin = false
	}
	return bonus, thin
}

func mentionsAnySkill(e types.ExperienceEntry, skills []string) bool {
	if len(skills) == 0 {
		return false
	}
	text := strings.ToLower(e.JobTitle + " " + strings.Join(e.Responsibilities, " "))
	for _, s := range skills {
		if strings.Contains(text, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func skillTier(total int) int {
	switch {
	case total >= 15:
		return 20
	case total >= 10:
		return 15
	case total >= 5:
		return 10
	case total >= 3:
		return 5
	default:
		return 0
	}
}

func summaryPoints(summary *string) int {
	if summary == nil {
		return 0
	}
	length := utf8.RuneCountInString(*summary)
	switch {
	case length > longSummaryChars:
		return maxSummaryPoints
	case length > okSummaryChars:
		return 3
	default:
		return 0
	}
}

func qualityGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
