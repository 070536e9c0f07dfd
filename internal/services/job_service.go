package services

import (
	"context"
	"strings"

	"github.com/veridian-ai/careers-portal/internal/dtos"
	"github.com/veridian-ai/careers-portal/internal/models"
)

// DirectoryService drives the job board: it fetches the open postings once
// through the proxy and then filters the in-memory list as the visitor types.
// Filtering never hits the network, which is why there is no debouncing.
type DirectoryService struct {
	client *PortalClient
}

func NewDirectoryService(client *PortalClient) *DirectoryService {
	return &DirectoryService{client: client}
}

// Fetch loads the current directory page.
func (s *DirectoryService) Fetch(ctx context.Context, q dtos.JobListQuery) ([]models.JobPosting, models.Pagination, error) {
	resp, err := s.client.ListJobs(ctx, q)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return resp.Data, resp.Pagination, nil
}

// Job loads one posting by id, always via the proxy.
func (s *DirectoryService) Job(ctx context.Context, jobPostingID string) (*models.JobPosting, error) {
	return s.client.GetJob(ctx, jobPostingID)
}

// DirectoryFilter is the visitor's current search box and dropdown state.
// Empty fields match everything.
type DirectoryFilter struct {
	Search         string
	EmploymentType string
	WorkplaceType  string
	SeniorityLevel string
}

// FilterJobs narrows an already-fetched list. Search matches title,
// description, or location case-insensitively; the dropdowns are exact
// matches.
func FilterJobs(jobs []models.JobPosting, f DirectoryFilter) []models.JobPosting {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(job.Title), search) &&
			!strings.Contains(strings.ToLower(job.Description), search) &&
			!strings.Contains(strings.ToLower(job.Location), search) {
			continue
		}
		if f.EmploymentType != "" && job.EmploymentType != f.EmploymentType {
			continue
		}
		if f.WorkplaceType != "" && job.WorkplaceType != f.WorkplaceType {
			continue
		}
		if f.SeniorityLevel != "" && job.SeniorityLevel != f.SeniorityLevel {
			continue
		}
		out = append(out, job)
	}
	return out
}
