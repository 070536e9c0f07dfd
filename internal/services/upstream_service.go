package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/veridian-ai/careers-portal/internal/dtos"
)

// UpstreamClient talks to the external job-platform API on behalf of the
// proxy. It does no schema transformation at all: success bodies come back as
// raw bytes so the handler can relay them verbatim.
type UpstreamClient struct {
	baseURL string
	client  *http.Client
}

func NewUpstreamClient(baseURL string, timeout time.Duration) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// UpstreamResult is a successful (2xx) platform response.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
}

// UpstreamError is a non-2xx platform response. The body is kept for
// server-side logging; it must never be relayed to the browser.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, snippet(e.Body, 500))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// ListJobs forwards a directory query to GET {base}/public/jobs,
// unauthenticated.
func (c *UpstreamClient) ListJobs(ctx context.Context, q dtos.JobListQuery) (*UpstreamResult, error) {
	endpoint := c.endpoint("public/jobs")
	if enc := buildListQuery(q).Encode(); enc != "" {
		endpoint += "?" + enc
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, nil)
}

// GetJobDetails forwards to GET {base}/public/jobs/{id}, unauthenticated.
func (c *UpstreamClient) GetJobDetails(ctx context.Context, jobPostingID string) (*UpstreamResult, error) {
	return c.do(ctx, http.MethodGet, c.endpoint("public/jobs/"+url.PathEscape(jobPostingID)), nil, nil)
}

// SubmitApplication forwards the caller's JSON body and Authorization header
// to POST {base}/public/jobs/{id}/apply. The token is passed through as-is;
// the platform is the one that validates it.
func (c *UpstreamClient) SubmitApplication(ctx context.Context, jobPostingID string, body []byte, authorization string) (*UpstreamResult, error) {
	header := http.Header{}
	header.Set("Authorization", authorization)
	endpoint := c.endpoint("public/jobs/" + url.PathEscape(jobPostingID) + "/apply")
	return c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body), header)
}

// buildListQuery maps the inbound query onto upstream parameters. sortBy is
// restricted to the fields the directory endpoint supports; anything else is
// dropped silently together with sortOrder.
func buildListQuery(q dtos.JobListQuery) url.Values {
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
	if q.SortBy != "" && dtos.ValidSortFields[q.SortBy] {
		vals.Set("sortBy", q.SortBy)
		order := q.SortOrder
		if order == "" {
			order = "asc"
		}
		vals.Set("sortOrder", order)
	}
	if q.Page != "" {
		vals.Set("page", q.Page)
	}
	if q.Limit != "" {
		vals.Set("limit", q.Limit)
	}
	return vals
}

func (c *UpstreamClient) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *UpstreamClient) do(ctx context.Context, method, endpoint string, body io.Reader, header http.Header) (*UpstreamResult, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "building upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "calling upstream %s %s", method, endpoint)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading upstream response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return &UpstreamResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}
