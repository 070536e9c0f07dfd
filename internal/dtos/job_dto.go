package dtos

// JobListQuery mirrors the query parameters the browser sends to
// GET /api/public/jobs. Everything is optional; unknown sort fields are
// dropped before the request is forwarded upstream.
type JobListQuery struct {
	Search         string `form:"search"`
	EmploymentType string `form:"employmentType"`
	WorkplaceType  string `form:"workplaceType"`
	SeniorityLevel string `form:"seniorityLevel"`
	Location       string `form:"location"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"`
	Page           string `form:"page"`
	Limit          string `form:"limit"`
}

// Sort fields the upstream directory endpoint supports. Anything else
// (candidate fields like firstName in particular) must never be forwarded.
var ValidSortFields = map[string]bool{
	"title":               true,
	"createdAt":           true,
	"applicationDeadline": true,
}
