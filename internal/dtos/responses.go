package dtos

import "github.com/veridian-ai/careers-portal/internal/models"

// Response envelopes shared by the proxy and the platform it wraps. The proxy
// relays upstream success bodies verbatim; these types exist so Go callers
// (the directory client and the wizard) can decode them.

type JobListResponse struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"statusCode"`
	Data       []models.JobPosting `json:"data"`
	Message    string              `json:"message"`
	Pagination models.Pagination   `json:"pagination"`
}

type JobDetailResponse struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Data       models.JobPosting `json:"data"`
	Message    string            `json:"message"`
}

type ApplyResponse struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Data       SubmissionReceipt `json:"data"`
	Message    string            `json:"message"`
}

// ErrorResponse is the proxy's own failure shape, returned for every failed
// operation regardless of whether the upstream rejected the request or never
// answered at all.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func NewErrorResponse(statusCode int, errLabel, message string) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		Error:      errLabel,
		Message:    message,
	}
}
