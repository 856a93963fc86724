package analysis

import (
	"regexp"
)

const (
	maxRecommendations = 7
	minRecommendations = 5
)

// recommendationBucket maps a family of issue wordings to one canned
// suggestion. Buckets are evaluated in order and each fires at most once.
type recommendationBucket struct {
	name    string
	pattern *regexp.Regexp
	tip     string
}

var recommendationBuckets = []recommendationBucket{
	{
		name:    "email",
		pattern: regexp.MustCompile(`(?i)email`),
		tip:     "Add a professional email address near the top of your resume",
	},
	{
		name:    "phone",
		pattern: regexp.MustCompile(`(?i)phone`),
		tip:     "Include a phone number recruiters can reach you at",
	},
	{
		name:    "social",
		pattern: regexp.MustCompile(`(?i)linkedin|github|portfolio`),
		tip:     "Link your LinkedIn, GitHub, or portfolio to strengthen your profile",
	},
	{
		name:    "experience",
		pattern: regexp.MustCompile(`(?i)experience`),
		tip:     "List your work history with clear job titles and date ranges",
	},
	{
		name:    "company",
		pattern: regexp.MustCompile(`(?i)company`),
		tip:     "Name the employer for every role you list",
	},
	{
		name:    "skills",
		pattern: regexp.MustCompile(`(?i)skill`),
		tip:     "Add a dedicated skills section naming the technologies you use",
	},
	{
		name:    "summary",
		pattern: regexp.MustCompile(`(?i)summary`),
		tip:     "Open with a two or three sentence professional summary",
	},
	{
		name:    "education",
		pattern: regexp.MustCompile(`(?i)education`),
		tip:     "Add an education section with your degree and institution",
	},
	{
		name:    "extras",
		pattern: regexp.MustCompile(`(?i)certification|project`),
		tip:     "Mention certifications or notable projects to stand out",
	},
	{
		name:    "bullets",
		pattern: regexp.MustCompile(`(?i)bullet`),
		tip:     "Expand each role with three to five accomplishment bullet points",
	},
}

var genericTips = []string{
	"Keep formatting simple so automated parsers and recruiters read the same resume",
	"Quantify achievements with concrete numbers wherever possible",
}

// Recommend turns accumulated issue texts into human-readable suggestions:
// one per matched bucket, capped, and padded with generic best-practice tips
// when few specific issues were found.
func Recommend(issues []string) []string {
	recommendations := []string{}
	for _, bucket := range recommendationBuckets {
		if len(recommendations) >= maxRecommendations {
			break
		}
		for _, issue := range issues {
			if bucket.pattern.MatchString(issue) {
				recommendations = append(recommendations, bucket.tip)
				break
			}
		}
	}
	if len(recommendations) < minRecommendations {
		recommendations = append(recommendations, genericTips...)
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
