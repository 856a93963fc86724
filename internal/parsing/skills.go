package parsing

import (
	"regexp"
	"sort"

	"github.com/resumify/backend/internal/types"
)

// skillRule matches one raw alias, whole-word and lowercase, and maps it to
// its canonical display name. Multiple aliases may share a canonical name.
type skillRule struct {
	alias     string
	canonical string
	pattern   *regexp.Regexp
}

func newSkillRule(alias, canonical string) skillRule {
	return skillRule{
		alias:     alias,
		canonical: canonical,
		pattern:   regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`),
	}
}

// The closed skill vocabulary. Unknown skills are never surfaced; aliases the
// word-boundary match cannot hit (c++, c#) stay listed for completeness.
var (
	programmingLanguageRules = []skillRule{
		newSkillRule("java", "Java"),
		newSkillRule("javascript", "JavaScript"),
		newSkillRule("js", "JavaScript"),
		newSkillRule("typescript", "TypeScript"),
		newSkillRule("python", "Python"),
		newSkillRule("c++", "C++"),
		newSkillRule("c#", "C#"),
		newSkillRule("go", "Go"),
		newSkillRule("ruby", "Ruby"),
	}
	frameworkRules = []skillRule{
		newSkillRule("react", "React.js"),
		newSkillRule("reactjs", "React.js"),
		newSkillRule("react.js", "React.js"),
		newSkillRule("next", "Next.js"),
		newSkillRule("next.js", "Next.js"),
		newSkillRule("angular", "Angular"),
		newSkillRule("vue", "Vue.js"),
		newSkillRule("django", "Django"),
		newSkillRule("flask", "Flask"),
		newSkillRule("spring", "Spring"),
	}
	cloudRules = []skillRule{
		newSkillRule("aws", "AWS"),
		newSkillRule("azure", "Azure"),
		newSkillRule("gcp", "GCP"),
		newSkillRule("docker", "Docker"),
		newSkillRule("kubernetes", "Kubernetes"),
		newSkillRule("k8s", "Kubernetes"),
		newSkillRule("terraform", "Terraform"),
	}
	databaseRules = []skillRule{
		newSkillRule("mysql", "MySQL"),
		newSkillRule("postgres", "PostgreSQL"),
		newSkillRule("postgresql", "PostgreSQL"),
		newSkillRule("mongodb", "MongoDB"),
		newSkillRule("redis", "Redis"),
	}
	devToolRules = []skillRule{
		newSkillRule("git", "Git"),
		newSkillRule("jira", "Jira"),
		newSkillRule("jenkins", "Jenkins"),
		newSkillRule("github", "GitHub"),
		newSkillRule("gitlab", "GitLab"),
	}
)

// classifySkills matches the catalog against the lowercased resume text and
// assembles the five fixed categories, each sorted and deduplicated.
func classifySkills(lowerText string) types.SkillSet {
	return types.SkillSet{
		ProgrammingLanguages:   matchCatalog(lowerText, programmingLanguageRules),
		FrameworksAndLibraries: matchCatalog(lowerText, frameworkRules),
		CloudAndInfra:          matchCatalog(lowerText, cloudRules),
		Databases:              matchCatalog(lowerText, databaseRules),
		DevTools:               matchCatalog(lowerText, devToolRules),
	}
}

func matchCatalog(lowerText string, rules []skillRule) []string {
	seen := make(map[string]bool)
	matched := []string{}
	for _, rule := range rules {
		if !rule.pattern.MatchString(lowerText) || seen[rule.canonical] {
			continue
		}
		seen[rule.canonical] = true
		matched = append(matched, rule.canonical)
	}
	sort.Strings(matched)
	return matched
}
