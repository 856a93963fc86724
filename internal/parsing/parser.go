package parsing

import "github.com/resumify/backend/internal/types"

// Parse extracts a complete structured record from plain resume text. It is
// deterministic and never fails: anything the heuristics cannot find degrades
// to null or empty values with zero confidence, and partial extraction is a
// normal outcome.
func Parse(text string) *types.ParsedResume {
	doc := NewDocument(text)

	r := &types.ParsedResume{
		ContactInfo: extractContact(doc),
		Experience:  parseExperience(doc),
		Education:   parseEducation(doc),
		Skills:      classifySkills(doc.JoinedLower),
		RoleLevel:   classifyRoleLevel(doc.Joined),
		PrimaryRole: classifyPrimaryRole(doc.Joined),
		Raw:         text,
	}
	r.Normalize()
	return r
}
