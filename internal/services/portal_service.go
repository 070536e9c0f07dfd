package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/veridian-ai/careers-portal/internal/dtos"
	"github.com/veridian-ai/careers-portal/internal/models"
)

// PortalClient is the browser-side counterpart of the proxy: everything the
// directory and the application wizard need goes through the proxy's
// /api/public/jobs routes, never straight to the platform. Keeping a single
// route into the platform keeps the auth and error contracts in one place.
type PortalClient struct {
	baseURL string
	client  *http.Client
}

func NewPortalClient(baseURL string, timeout time.Duration) *PortalClient {
	return &PortalClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// SubmissionError is a failed application submission: either the platform
// rejected it or the proxy could not reach the platform. Message is safe to
// show to the candidate.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed (%d): %s", e.StatusCode, e.Message)
}

// UserMessage is the candidate-facing text for a failed submission.
func (e *SubmissionError) UserMessage() string { return e.Message }

// ListJobs fetches the full directory page from the proxy.
func (c *PortalClient) ListJobs(ctx context.Context, q dtos.JobListQuery) (*dtos.JobListResponse, error) {
	endpoint := c.baseURL + "/api/public/jobs"
	if enc := listQueryValues(q).Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building job list request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, errors.Errorf("job list request failed with status %d", status)
	}

	var out dtos.JobListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decoding job list response")
	}
	return &out, nil
}

// GetJob fetches a single posting by id through the proxy.
func (c *PortalClient) GetJob(ctx context.Context, jobPostingID string) (*models.JobPosting, error) {
	endpoint := c.baseURL + "/api/public/jobs/" + url.PathEscape(jobPostingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building job detail request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, errors.Errorf("job detail request failed with status %d", status)
	}

	var out dtos.JobDetailResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decoding job detail response")
	}
	return &out.Data, nil
}

// SubmitApplication posts a finished application with the candidate's bearer
// token. A non-2xx answer becomes a *SubmissionError carrying whatever
// message the proxy's envelope had, so the wizard can show it.
func (c *PortalClient) SubmitApplication(ctx context.Context, jobPostingID string, payload dtos.ApplicationPayload, accessToken string) (*dtos.SubmissionReceipt, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding application payload")
	}

	endpoint := c.baseURL + "/api/public/jobs/" + url.PathEscape(jobPostingID) + "/apply"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "building application request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, status, err := c.send(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &SubmissionError{StatusCode: status, Message: failureMessage(body)}
	}

	var out dtos.ApplyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decoding application response")
	}
	return &out.Data, nil
}

func (c *PortalClient) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "calling %s %s", req.Method, req.URL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "reading response body")
	}
	return body, resp.StatusCode, nil
}

// failureMessage pulls the human-readable message out of the proxy's error
// envelope, falling back to a generic retry message.
func failureMessage(body []byte) string {
	var envelope dtos.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return "An error occurred while submitting your application."
}

// listQueryValues mirrors buildListQuery without the sortBy gate; the proxy
// owns that policy and applies it before forwarding.
func listQueryValues(q dtos.JobListQuery) url.Values {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.EmploymentType != "" {
		vals.Set("employmentType", q.EmploymentType)
	}
	if q.WorkplaceType != "" {
		vals.Set("workplaceType", q.WorkplaceType)
	}
	if q.SeniorityLevel != "" {
		vals.Set("seniorityLevel", q.SeniorityLevel)
	}
	if q.Location != "" {
		vals.Set("location", q.Location)
	}
	if q.SortBy != "" {
		vals.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		vals.Set("sortOrder", q.SortOrder)
	}
	if q.Page != "" {
		vals.Set("page", q.Page)
	}
	if q.Limit != "" {
		vals.Set("limit", q.Limit)
	}
	return vals
}
