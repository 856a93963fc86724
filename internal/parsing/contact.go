package parsing

import (
	"regexp"
	"strings"

	"github.com/resumify/backend/internal/types"
)

// Header scan bounds: locations live in the first lines of a resume, summary
// headings a little further down.
const (
	locationScanLines = 10
	summaryScanFrom   = 3
	summaryScanTo     = 15
)

var (
	emailPattern          = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern          = regexp.MustCompile(`(\+\d{1,3}[\s-]?)?(\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{4})`)
	summaryHeadingPattern = regexp.MustCompile(`(?i)summary|objective|profile`)
)

// roleRule is one named classification rule. Rules are evaluated in declared
// order and the first match wins, so precedence lives in the list, not in
// branching code.
type roleRule struct {
	name    string
	pattern *regexp.Regexp
	result  string
}

var roleLevelRules = []roleRule{
	{name: "senior", pattern: regexp.MustCompile(`(?i)\bsenior\b`), result: types.RoleLevelSenior},
	{name: "junior", pattern: regexp.MustCompile(`(?i)\bjunior\b|\bentry\b`), result: types.RoleLevelJunior},
}

var primaryRoleRules = []roleRule{
	{name: "cloud_sysops", pattern: regexp.MustCompile(`(?i)devops|sysops|system administrator|infrastructure`), result: types.PrimaryRoleCloud},
	{name: "frontend", pattern: regexp.MustCompile(`(?i)frontend|react|ui`), result: types.PrimaryRoleFrontend},
	{name: "backend", pattern: regexp.MustCompile(`(?i)backend|api|microservices`), result: types.PrimaryRoleBackend},
}

// extractContact fills the identity block: name from the first line, email
// and phone from the full text, location from the header lines, summary from
// the line after a summary-style heading.
func extractContact(doc *Document) types.ContactInfo {
	var c types.ContactInfo

	if len(doc.Lines) > 0 {
		c.Name = types.String(doc.Lines[0])
		c.NameConfidence = types.ConfidenceName
	}

	if m := emailPattern.FindString(doc.Joined); m != "" {
		c.Email = types.String(m)
		c.EmailConfidence = types.ConfidenceEmail
	}

	if m := phonePattern.FindString(doc.Joined); m != "" {
		c.Phone = types.String(m)
		c.PhoneConfidence = types.ConfidencePhone
	}

	for i := 0; i < len(doc.Lines) && i < locationScanLines; i++ {
		line := doc.Lines[i]
		if strings.Contains(line, ",") && !strings.Contains(line, "@") {
			c.Location = types.String(line)
			c.LocationConfidence = types.ConfidenceLocation
			break
		}
	}

	for i := summaryScanFrom; i < len(doc.Lines) && i < summaryScanTo; i++ {
		if summaryHeadingPattern.MatchString(doc.Lines[i]) {
			if i+1 < len(doc.Lines) {
				c.Summary = types.String(doc.Lines[i+1])
				c.SummaryConfidence = types.ConfidenceSummary
			}
			break
		}
	}

	return c
}

func classifyRoleLevel(text string) string {
	for _, rule := range roleLevelRules {
		if rule.pattern.MatchString(text) {
			return rule.result
		}
	}
	return types.RoleLevelMid
}

func classifyPrimaryRole(text string) *string {
	for _, rule := range primaryRoleRules {
		if rule.pattern.MatchString(text) {
			return types.String(rule.result)
		}
	}
	return nil
}
