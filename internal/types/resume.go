// Package types provides type definitions for structured data used throughout the resume parsing system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entry caps applied to every parsed record, whichever backend produced it.
const (
	MaxExperienceEntries = 5
	MaxEducationEntries  = 3
	MaxResponsibilities  = 8
)

// Confidence defaults for heuristically extracted fields. A field is present
// if and only if its confidence is greater than zero.
const (
	ConfidenceName        = 0.9
	ConfidenceEmail       = 0.95
	ConfidencePhone       = 0.9
	ConfidenceLocation    = 0.8
	ConfidenceSummary     = 0.8
	ConfidenceJobTitle    = 0.85
	ConfidenceCompany     = 0.8
	ConfidenceDegree      = 0.85
	ConfidenceInstitution = 0.8
)

// Role seniority levels.
const (
	RoleLevelJunior = "Junior"
	RoleLevelMid    = "Mid-level"
	RoleLevelSenior = "Senior"
)

// Primary role families. A resume that signals none of them carries a null
// primary_role.
const (
	PrimaryRoleFrontend = "Frontend"
	PrimaryRoleBackend  = "Backend"
	PrimaryRoleCloud    = "Cloud / SysOps"
)

// String returns a pointer to s. Optional record fields are pointers so that
// absent values serialize as JSON null.
func String(s string) *string {
	return &s
}

// ContactInfo represents the identity block extracted from the top of a resume.
// Every value field is optional; its companion confidence is zero exactly when
// the value is absent.
type ContactInfo struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Summary  *string `json:"summary"`

	NameConfidence     float64 `json:"name_confidence" validate:"gte=0,lte=1"`
	EmailConfidence    float64 `json:"email_confidence" validate:"gte=0,lte=1"`
	PhoneConfidence    float64 `json:"phone_confidence" validate:"gte=0,lte=1"`
	LocationConfidence float64 `json:"location_confidence" validate:"gte=0,lte=1"`
	SummaryConfidence  float64 `json:"summary_confidence" validate:"gte=0,lte=1"`
}

// ExperienceEntry represents a single role parsed from the experience section.
type ExperienceEntry struct {
	JobTitle         string   `json:"job_title"`
	Company          *string  `json:"company"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`

	JobTitleConfidence float64 `json:"job_title_confidence" validate:"gte=0,lte=1"`
	CompanyConfidence  float64 `json:"company_confidence" validate:"gte=0,lte=1"`
}

// EducationEntry represents a single credential parsed from the education section.
type EducationEntry struct {
	Degree      string  `json:"degree"`
	Institution *string `json:"institution"`
	Year        string  `json:"year"`

	DegreeConfidence      float64 `json:"degree_confidence" validate:"gte=0,lte=1"`
	InstitutionConfidence float64 `json:"institution_confidence" validate:"gte=0,lte=1"`
}

// SkillSet groups canonical skill names into five fixed categories. Categories
// are always present and sorted; an empty category is an empty list, not null.
type SkillSet struct {
	ProgrammingLanguages   []string `json:"programming_languages"`
	FrameworksAndLibraries []string `json:"frameworks_and_libraries"`
	CloudAndInfra          []string `json:"cloud_and_infra"`
	Databases              []string `json:"databases"`
	DevTools               []string `json:"dev_tools"`
}

// NewSkillSet returns a SkillSet with every category initialized to an empty list.
func NewSkillSet() SkillSet {
	return SkillSet{
		ProgrammingLanguages:   []string{},
		FrameworksAndLibraries: []string{},
		CloudAndInfra:          []string{},
		Databases:              []string{},
		DevTools:               []string{},
	}
}

// categories returns pointers to the category slices in declaration order.
func (s *SkillSet) categories() []*[]string {
	return []*[]string{
		&s.ProgrammingLanguages,
		&s.FrameworksAndLibraries,
		&s.CloudAndInfra,
		&s.Databases,
		&s.DevTools,
	}
}

// Total returns the number of skills across all categories.
func (s *SkillSet) Total() int {
	total := 0
	for _, c := range s.categories() {
		total += len(*c)
	}
	return total
}

// CategoriesCovered returns how many categories hold at least one skill.
func (s *SkillSet) CategoriesCovered() int {
	covered := 0
	for _, c := range s.categories() {
		if len(*c) > 0 {
			covered++
		}
	}
	return covered
}

// All returns every skill across all categories, in category order.
func (s *SkillSet) All() []string {
	all := make([]string, 0, s.Total())
	for _, c := range s.categories() {
		all = append(all, *c...)
	}
	return all
}

// Normalize sorts and deduplicates each category and replaces nil slices with
// empty ones so the set always serializes with all five categories.
func (s *SkillSet) Normalize() {
	for _, c := range s.categories() {
		*c = sortedUnique(*c)
	}
}

func sortedUnique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ParsedResume is the full structured record produced by the parsing pipeline.
// ContactInfo is embedded so its fields serialize at the top level, while the
// skill categories stay namespaced under "skills".
type ParsedResume struct {
	ContactInfo

	Experience  []ExperienceEntry `json:"experience"`
	Education   []EducationEntry  `json:"education"`
	Skills      SkillSet          `json:"skills"`
	RoleLevel   string            `json:"role_level" validate:"omitempty,oneof=Junior Mid-level Senior"`
	PrimaryRole *string           `json:"primary_role"`
	Raw         string            `json:"raw"`
}

// Validate validates the ParsedResume using the validator.
func (r *ParsedResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalize enforces the record invariants regardless of which backend built
// it: entry and bullet caps, non-nil lists, canonical sorted skills, the
// confidence/presence coupling, and a defaulted role level.
func (r *ParsedResume) Normalize() {
	if len(r.Experience) > MaxExperienceEntries {
		r.Experience = r.Experience[:MaxExperienceEntries]
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		e := &r.Experience[i]
		if len(e.Responsibilities) > MaxResponsibilities {
			e.Responsibilities = e.Responsibilities[:MaxResponsibilities]
		}
		if e.Responsibilities == nil {
			e.Responsibilities = []string{}
		}
		e.JobTitleConfidence = coupleConfidence(e.JobTitle != "", e.JobTitleConfidence, ConfidenceJobTitle)
		e.CompanyConfidence = coupleConfidence(present(e.Company), e.CompanyConfidence, ConfidenceCompany)
	}

	if len(r.Education) > MaxEducationEntries {
		r.Education = r.Education[:MaxEducationEntries]
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	for i := range r.Education {
		e := &r.Education[i]
		e.DegreeConfidence = coupleConfidence(e.Degree != "", e.DegreeConfidence, ConfidenceDegree)
		e.InstitutionConfidence = coupleConfidence(present(e.Institution), e.InstitutionConfidence, ConfidenceInstitution)
	}

	r.Skills.Normalize()

	r.NameConfidence = coupleConfidence(present(r.Name), r.NameConfidence, ConfidenceName)
	r.EmailConfidence = coupleConfidence(present(r.Email), r.EmailConfidence, ConfidenceEmail)
	r.PhoneConfidence = coupleConfidence(present(r.Phone), r.PhoneConfidence, ConfidencePhone)
	r.LocationConfidence = coupleConfidence(present(r.Location), r.LocationConfidence, ConfidenceLocation)
	r.SummaryConfidence = coupleConfidence(present(r.Summary), r.SummaryConfidence, ConfidenceSummary)

	if r.RoleLevel == "" {
		r.RoleLevel = RoleLevelMid
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// coupleConfidence keeps a confidence score consistent with its field: absent
// fields score zero, present fields with no score get the heuristic default.
func coupleConfidence(isPresent bool, current, fallback float64) float64 {
	if !isPresent {
		return 0
	}
	if current <= 0 {
		return fallback
	}
	return current
}
