// Package types provides type definitions for structured data used throughout the resume parsing system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CategoryScore is one row of a quality report breakdown.
type CategoryScore struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// QualityReport scores resume content quality on an additive 0-100 scale.
type QualityReport struct {
	Score           int                      `json:"score"`
	Grade           string                   `json:"grade"`
	Breakdown       map[string]CategoryScore `json:"breakdown"`
	Strengths       []string                 `json:"strengths"`
	Issues          []string                 `json:"issues"`
	Recommendations []string                 `json:"recommendations"`
}

// KeywordDensity summarizes how keyword-rich a resume reads to an ATS scanner.
type KeywordDensity struct {
	TotalSkills       int     `json:"total_skills"`
	CategoriesCovered int     `json:"categories_covered"`
	WordCount         int     `json:"word_count"`
	SkillsPer100Words float64 `json:"skills_per_100_words"`
}

// AtsReport scores machine-readability starting from 100 and subtracting per
// detected issue, floored at zero. A resume is ATS friendly at 70 or above.
type AtsReport struct {
	Score           int            `json:"score"`
	AtsFriendly     bool           `json:"ats_friendly"`
	Grade           string         `json:"grade"`
	CriticalIssues  []string       `json:"critical_issues"`
	Warnings        []string       `json:"warnings"`
	Recommendations []string       `json:"recommendations"`
	KeywordDensity  KeywordDensity `json:"keyword_density"`
}
