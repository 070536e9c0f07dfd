package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/veridian-ai/careers-portal/internal/dtos"
	"github.com/veridian-ai/careers-portal/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the public routes the way cmd/api does.
func newTestRouter(upstreamURL string) *gin.Engine {
	jobHandler := NewJobHandler(services.NewUpstreamClient(upstreamURL, 5*time.Second))

	r := gin.New()
	r.Use(RequestID())
	public := r.Group("/api/public")
	public.GET("/jobs", jobHandler.ListJobs)
	public.GET("/jobs/:jobPostingId", jobHandler.GetJobDetails)
	public.POST("/jobs/:jobPostingId/apply", jobHandler.SubmitApplication)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dtos.ErrorResponse {
	t.Helper()
	var resp dtos.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an error envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestListJobsRelaysUpstreamVerbatim(t *testing.T) {
	const body = `{"success":true,"statusCode":200,"data":[{"id":"j1"}],"message":"ok","pagination":{"page":1,"limit":20,"total":1,"totalPages":1}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != body {
		t.Errorf("body not relayed verbatim:\ngot  %s\nwant %s", w.Body.String(), body)
	}
}

func TestListJobsDropsInvalidSortBy(t *testing.T) {
	var seen map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.Write([]byte(`{"success":true,"statusCode":200,"data":[],"message":"ok"}`))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs?sortBy=firstName&sortOrder=desc&search=ai", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if _, present := seen["sortBy"]; present {
		t.Error("sortBy=firstName reached the upstream")
	}
	if _, present := seen["sortOrder"]; present {
		t.Error("sortOrder reached the upstream despite invalid sortBy")
	}
	if got := seen["search"]; len(got) != 1 || got[0] != "ai" {
		t.Errorf("search not forwarded: %v", seen)
	}
}

func TestListJobsAppendsDefaultSortOrder(t *testing.T) {
	var seen map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.Write([]byte(`{"success":true,"statusCode":200,"data":[],"message":"ok"}`))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs?sortBy=title", nil))

	if got := seen["sortBy"]; len(got) != 1 || got[0] != "title" {
		t.Errorf("sortBy not forwarded: %v", seen)
	}
	if got := seen["sortOrder"]; len(got) != 1 || got[0] != "asc" {
		t.Errorf("sortOrder should default to asc, got %v", seen)
	}
}

func TestListJobsNormalizesUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("stack trace: secret internal details"))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want upstream's 500", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Success || resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if resp.Error != "Backend API Error" {
		t.Errorf("error label = %q, want Backend API Error", resp.Error)
	}
	if strings.Contains(w.Body.String(), "secret internal details") {
		t.Error("raw upstream error text leaked to the caller")
	}
}

func TestListJobsUnreachableUpstreamIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Error != "Bad Gateway" {
		t.Errorf("error label = %q, want Bad Gateway", resp.Error)
	}
}

func TestSubmitApplicationRequiresAuthorization(t *testing.T) {
	upstreamHits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits++
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/jobs/j1/apply",
		strings.NewReader(`{"resumeUrl":"https://x.test/r.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Error != "Unauthorized" {
		t.Errorf("error label = %q, want Unauthorized", resp.Error)
	}
	if upstreamHits != 0 {
		t.Errorf("request without Authorization reached the upstream %d times", upstreamHits)
	}
}

func TestSubmitApplicationForwardsBodyAndToken(t *testing.T) {
	var gotAuth, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"success":true,"statusCode":200,"data":{"id":"app-1"},"message":"ok"}`))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)
	w := httptest.NewRecorder()
	body := `{"resumeUrl":"https://x.test/r.pdf","phone":"555-0100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/jobs/j1/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want forwarded bearer token", gotAuth)
	}
	if gotBody != body {
		t.Errorf("body not forwarded untouched: %q", gotBody)
	}
}

func TestGetJobDetailsRequiresID(t *testing.T) {
	// Exercise the guard directly; gin's router would not match an empty
	// path segment.
	jobHandler := NewJobHandler(services.NewUpstreamClient("http://127.0.0.1:0", time.Second))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/public/jobs/", nil)
	jobHandler.GetJobDetails(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "Job posting ID is required" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestSubmitApplicationRequiresID(t *testing.T) {
	jobHandler := NewJobHandler(services.NewUpstreamClient("http://127.0.0.1:0", time.Second))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/public/jobs//apply", strings.NewReader(`{}`))
	jobHandler.SubmitApplication(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRequestIDEchoedInResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"statusCode":200,"data":[],"message":"ok"}`))
	}))
	defer upstream.Close()

	r := newTestRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil)
	req.Header.Set("X-Request-ID", "given-id")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "given-id" {
		t.Errorf("X-Request-ID = %q, want the caller's id echoed", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/jobs", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be generated when the caller sends none")
	}
}
