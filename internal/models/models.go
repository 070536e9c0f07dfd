package models

// All job-posting data is owned by the external job platform; these types are
// read-only projections of its wire format. JSON tags match the upstream
// responses exactly (camelCase).

type WorkplaceType = string

const (
	WorkplaceRemote WorkplaceType = "Remote"
	WorkplaceOnSite WorkplaceType = "On-site"
	WorkplaceHybrid WorkplaceType = "Hybrid"
)

type EmploymentType = string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

type SeniorityLevel = string

const (
	SeniorityEntry     SeniorityLevel = "Entry"
	SeniorityMid       SeniorityLevel = "Mid"
	SenioritySenior    SeniorityLevel = "Senior"
	SeniorityLead      SeniorityLevel = "Lead"
	SeniorityDirector  SeniorityLevel = "Director"
	SeniorityExecutive SeniorityLevel = "Executive"
)

type JobPosting struct {
	ID               string         `json:"id"`
	OrganizationID   string         `json:"organizationId"`
	OrganizationName string         `json:"organizationName"`
	JobID            string         `json:"jobId"`
	Title            string         `json:"title"`
	Location         string         `json:"location"`
	WorkplaceType    WorkplaceType  `json:"workplaceType"`
	EmploymentType   EmploymentType `json:"employmentType"`
	Description      string         `json:"description"`
	SeniorityLevel   SeniorityLevel `json:"seniorityLevel"`
	Qualifications   string         `json:"qualifications,omitempty"`
	SalaryRange      string         `json:"salaryRange,omitempty"`

	// RFC3339 date string; the platform leaves it empty when the posting has
	// no deadline.
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
	Perks               string `json:"perks,omitempty"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// CandidateIdentity is the profile fragment available after login. When a
// value is set here it is authoritative and wins over anything the candidate
// typed into the application form.
type CandidateIdentity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
