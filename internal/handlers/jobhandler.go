package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/veridian-ai/careers-portal/internal/dtos"
	"github.com/veridian-ai/careers-portal/internal/services"
)

// JobHandler fronts the three public job-board routes. It holds no state of
// its own; every request maps to exactly one upstream call.
type JobHandler struct {
	Upstream *services.UpstreamClient
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(upstream *services.UpstreamClient) *JobHandler {
	return &JobHandler{Upstream: upstream}
}

// ListJobs is the GET /api/public/jobs endpoint. No authentication; the
// upstream body and status are relayed verbatim on success.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dtos.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", "Invalid query parameters: "+err.Error()))
		return
	}

	result, err := h.Upstream.ListJobs(c.Request.Context(), query)
	if err != nil {
		h.writeUpstreamFailure(c, err, "Failed to fetch job postings from public API")
		return
	}

	log.Println("Successfully fetched job postings from public API")
	c.Data(result.StatusCode, "application/json", result.Body)
}

// GetJobDetails is the GET /api/public/jobs/:jobPostingId endpoint.
func (h *JobHandler) GetJobDetails(c *gin.Context) {
	jobPostingID := c.Param("jobPostingId")
	if jobPostingID == "" {
		c.JSON(http.StatusBadRequest, dtos.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", "Job posting ID is required"))
		return
	}

	result, err := h.Upstream.GetJobDetails(c.Request.Context(), jobPostingID)
	if err != nil {
		h.writeUpstreamFailure(c, err, "Failed to fetch job details from public API")
		return
	}

	log.Println("Successfully fetched job details from public API")
	c.Data(result.StatusCode, "application/json", result.Body)
}

// SubmitApplication is the POST /api/public/jobs/:jobPostingId/apply
// endpoint. The Authorization header must be present; its validity is the
// platform's problem. The JSON body is forwarded untouched.
func (h *JobHandler) SubmitApplication(c *gin.Context) {
	jobPostingID := c.Param("jobPostingId")
	if jobPostingID == "" {
		c.JSON(http.StatusBadRequest, dtos.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", "Job posting ID is required"))
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, dtos.NewErrorResponse(
			http.StatusUnauthorized, "Unauthorized",
			"Authentication required. Please provide an authorization token."))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", "Unable to read request body"))
		return
	}

	result, err := h.Upstream.SubmitApplication(c.Request.Context(), jobPostingID, body, authHeader)
	if err != nil {
		h.writeUpstreamFailure(c, err, "Failed to submit job application to public API")
		return
	}

	log.Println("Successfully submitted job application to public API")
	c.Data(result.StatusCode, "application/json", result.Body)
}

// writeUpstreamFailure normalizes every failure into the proxy's error shape.
// Upstream rejections keep their status code; transport failures become 502.
// The raw upstream error text only goes to the server log, never the caller.
func (h *JobHandler) writeUpstreamFailure(c *gin.Context, err error, message string) {
	var upstreamErr *services.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Printf("%s [request_id=%s]: %v", message, RequestIDFrom(c), upstreamErr)
		c.JSON(upstreamErr.StatusCode, dtos.NewErrorResponse(
			upstreamErr.StatusCode, "Backend API Error", message))
		return
	}

	log.Printf("%s [request_id=%s]: upstream unreachable: %v", message, RequestIDFrom(c), err)
	c.JSON(http.StatusBadGateway, dtos.NewErrorResponse(
		http.StatusBadGateway, "Bad Gateway", message))
}

// Ping is the GET /api/ping liveness endpoint.
func Ping(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
