package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	domainerrors "msc-team.backend/internal/domain/errors"
)

// Department is one of the fixed organizational categories.
type Department string

const (
	DepartmentAdmin           Department = "Admin Department"
	DepartmentTechnical       Department = "Technical Team"
	DepartmentHiTech          Department = "Hi-Tech Team"
	DepartmentMarketing       Department = "Marketing Team"
	DepartmentDesignCreative  Department = "Design/Creative Team"
	DepartmentDocumentation   Department = "Documentation Team"
	DepartmentEventManagement Department = "Event Management Team"
	DepartmentOutreach        Department = "Outreach Team"
	DepartmentPublicRelations Department = "Public Relations Team"
	DepartmentPrograms        Department = "Programs Team"
	DepartmentResearch        Department = "Research and Development Team"
)

// Departments lists the enumeration in display order.
var Departments = []Department{
	DepartmentAdmin,
	DepartmentTechnical,
	DepartmentHiTech,
	DepartmentMarketing,
	DepartmentDesignCreative,
	DepartmentDocumentation,
	DepartmentEventManagement,
	DepartmentOutreach,
	DepartmentPublicRelations,
	DepartmentPrograms,
	DepartmentResearch,
}

// IsValidDepartment reports whether name is an exact member of the enumeration.
func IsValidDepartment(name string) bool {
	for _, d := range Departments {
		if string(d) == name {
			return true
		}
	}
	return false
}

// DepartmentNames returns the enumeration as plain strings.
func DepartmentNames() []string {
	names := make([]string, 0, len(Departments))
	for _, d := range Departments {
		names = append(names, string(d))
	}
	return names
}

// TeamMember is a registered team member profile.
type TeamMember struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	RegNumber     string      `json:"regNumber"`
	Email         string      `json:"email"`
	ContactNumber string      `json:"contactNumber"`
	Department    string      `json:"department"`
	Role          string      `json:"role"`
	GithubLink    string      `json:"githubLink"`
	LinkedinLink  string      `json:"linkedinLink"`
	ResumeLink    string      `json:"resumeLink"`
	PortfolioLink string      `json:"portfolioLink"`
	Skills        []string    `json:"skills"`
	ShortBio      string      `json:"shortBio"`
	ImagePath     null.String `json:"imagePath"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

var (
	storedEmailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	storedContactPattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// Validate checks the constraints every store enforces before a write.
// It is the storage-side counterpart of the request rule set and reports
// all failing fields at once.
func (m *TeamMember) Validate() error {
	var fields []domainerrors.FieldError
	add := func(field, msg string) {
		fields = append(fields, domainerrors.FieldError{Field: field, Message: msg})
	}

	switch {
	case strings.TrimSpace(m.Name) == "":
		add("name", "Name is required")
	case utf8.RuneCountInString(m.Name) > 100:
		add("name", "Name cannot be more than 100 characters")
	}

	switch {
	case strings.TrimSpace(m.RegNumber) == "":
		add("regNumber", "Registration number is required")
	case utf8.RuneCountInString(m.RegNumber) > 20:
		add("regNumber", "Registration number cannot be more than 20 characters")
	}

	switch {
	case strings.TrimSpace(m.Email) == "":
		add("email", "Email is required")
	case !storedEmailPattern.MatchString(m.Email):
		add("email", "Please enter a valid email")
	}

	switch {
	case strings.TrimSpace(m.ContactNumber) == "":
		add("contactNumber", "Contact number is required")
	case !storedContactPattern.MatchString(m.ContactNumber):
		add("contactNumber", "Please enter a valid contact number")
	}

	switch {
	case m.Department == "":
		add("department", "Department is required")
	case !IsValidDepartment(m.Department):
		add("department", "Please select a valid department")
	}

	switch {
	case strings.TrimSpace(m.Role) == "":
		add("role", "Role is required")
	case utf8.RuneCountInString(m.Role) > 100:
		add("role", "Role cannot be more than 100 characters")
	}

	if utf8.RuneCountInString(m.ShortBio) > 500 {
		add("shortBio", "Bio cannot be more than 500 characters")
	}

	return domainerrors.NewValidationError(fields)
}

// Normalize lower-cases and trims the stored representation in place.
func (m *TeamMember) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.RegNumber = strings.TrimSpace(m.RegNumber)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.ContactNumber = strings.TrimSpace(m.ContactNumber)
	m.Role = strings.TrimSpace(m.Role)
	m.GithubLink = strings.TrimSpace(m.GithubLink)
	m.LinkedinLink = strings.TrimSpace(m.LinkedinLink)
	m.ResumeLink = strings.TrimSpace(m.ResumeLink)
	m.PortfolioLink = strings.TrimSpace(m.PortfolioLink)
	m.ShortBio = strings.TrimSpace(m.ShortBio)
	m.Skills = normalizeSkillList(m.Skills)
	if m.ImagePath.Valid {
		m.ImagePath.String = strings.TrimSpace(m.ImagePath.String)
	}
}

// TeamMemberInput is the submission body for create and update.
// The validate tags are the single source of the field rule set; see
// internal/domain/validation.
type TeamMemberInput struct {
	Name          string `json:"name" form:"name" validate:"required,min=2,max=100,letters_spaces"`
	RegNumber     string `json:"regNumber" form:"regNumber" validate:"required,max=20"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" form:"contactNumber" validate:"required,len=10,digits"`
	Department    string `json:"department" form:"department" validate:"required,department"`
	Role          string `json:"role" form:"role" validate:"required,max=100"`
	GithubLink    string `json:"githubLink" form:"githubLink" validate:"required,url,github_profile"`
	LinkedinLink  string `json:"linkedinLink" form:"linkedinLink" validate:"required,url,linkedin_profile"`
	ResumeLink    string `json:"resumeLink" form:"resumeLink" validate:"required,url"`
	PortfolioLink string `json:"portfolioLink" form:"portfolioLink" validate:"required,url"`
	Skills        string `json:"skills" form:"skills" validate:"required"`
	ShortBio      string `json:"shortBio" form:"shortBio" validate:"required,max=500"`
}

// Sanitize trims every field and lower-cases the email.
func (in *TeamMemberInput) Sanitize() {
	in.Name = strings.TrimSpace(in.Name)
	in.RegNumber = strings.TrimSpace(in.RegNumber)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)
	in.Department = strings.TrimSpace(in.Department)
	in.Role = strings.TrimSpace(in.Role)
	in.GithubLink = strings.TrimSpace(in.GithubLink)
	in.LinkedinLink = strings.TrimSpace(in.LinkedinLink)
	in.ResumeLink = strings.TrimSpace(in.ResumeLink)
	in.PortfolioLink = strings.TrimSpace(in.PortfolioLink)
	in.Skills = strings.TrimSpace(in.Skills)
	in.ShortBio = strings.TrimSpace(in.ShortBio)
}

// Apply copies the submitted fields onto m, normalizing skills.
func (in *TeamMemberInput) Apply(m *TeamMember) {
	m.Name = in.Name
	m.RegNumber = in.RegNumber
	m.Email = in.Email
	m.ContactNumber = in.ContactNumber
	m.Department = in.Department
	m.Role = in.Role
	m.GithubLink = in.GithubLink
	m.LinkedinLink = in.LinkedinLink
	m.ResumeLink = in.ResumeLink
	m.PortfolioLink = in.PortfolioLink
	m.Skills = NormalizeSkills(in.Skills)
	m.ShortBio = in.ShortBio
}

// TeamMemberFilter selects a page of profiles.
type TeamMemberFilter struct {
	Department string
	Page       int
	Limit      int // 0 means no limit
}

// Offset returns the number of rows to skip.
func (f TeamMemberFilter) Offset() int {
	if f.Page < 1 || f.Limit <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// RegistrationConfirmation is the minimal view returned after a create.
type RegistrationConfirmation struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
}

// DepartmentRoster groups the members of one department.
type DepartmentRoster struct {
	Department string        `json:"department"`
	Count      int           `json:"count"`
	Members    []*TeamMember `json:"members"`
}
