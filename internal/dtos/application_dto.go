package dtos

// ApplicationPayload is the wire-format application body sent to
// POST /api/public/jobs/:jobPostingId/apply. Every field is omitempty so an
// unset value disappears from the JSON entirely instead of arriving upstream
// as ""/0/[]. Name and email always come from the authenticated identity,
// never from form input.
type ApplicationPayload struct {
	FirstName            string   `json:"firstName,omitempty"`
	LastName             string   `json:"lastName,omitempty"`
	Email                string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone                string   `json:"phone,omitempty"`
	ProfessionalSummary  string   `json:"professionalSummary,omitempty"`
	ResumeURL            string   `json:"resumeUrl,omitempty" validate:"required,url"`
	TotalExperienceYears int      `json:"totalExperienceYears,omitempty" validate:"omitempty,gte=0"`
	CertificationEntries []string `json:"certificationEntries,omitempty" validate:"omitempty,dive,url"`
	Skills               []string `json:"skills,omitempty"`

	// "<amount> <currency code>", e.g. "50000 USD".
	ExpectedSalary string `json:"expectedSalary,omitempty"`
	Country        string `json:"country,omitempty"`
}

// SubmissionReceipt is the data object the platform returns for a successful
// application.
type SubmissionReceipt struct {
	ID           string `json:"id"`
	JobPostingID string `json:"jobPostingId"`
	CandidateID  string `json:"candidateId"`
	Status       string `json:"status"`
	AppliedAt    string `json:"appliedAt"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}
