package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/analyzer"
	"github.com/hireagent/backend/config"
	"github.com/hireagent/backend/gemini"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/scraper"
	"github.com/hireagent/backend/storage"
)

const resumeReply = `{
  "personal_info": {"name": "John Doe", "email": "john@example.com", "phone": "", "location": ""},
  "social_urls": {"linkedin_url": "", "github_url": "", "portfolio_url": ""},
  "professional_summary": "Backend engineer",
  "skills": ["Go"],
  "experience": [],
  "education": [],
  "certifications": [],
  "projects": [],
  "languages": []
}`

type scriptedOracle struct {
	reply string
	err   error
}

func (o *scriptedOracle) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if o.err != nil {
		return "", o.err
	}
	return o.reply, nil
}

func newTestRouter(t *testing.T, oracle gemini.Generator) (*gin.Engine, *storage.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		UploadDir:              t.TempDir(),
		MaxFileSize:            1 << 20,
		AllowedExtensions:      "pdf,docx,txt",
		ScrapingTimeoutSeconds: 1,
		MaxRetries:             1,
	}
	store, err := storage.NewFileStore(cfg)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	geminiClient := gemini.NewClientWithGenerator(oracle, cfg)
	scraperService := scraper.NewService(cfg)
	pipeline := analyzer.New(cfg, geminiClient, scraperService, store)

	resumeHandler := NewResumeHandler(pipeline, store)
	jobHandler := NewJobHandler(pipeline)
	analysisHandler := NewAnalysisHandler(pipeline)
	enrichHandler := NewEnrichHandler(scraperService)

	router := gin.New()
	router.GET("/health", HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/upload-resume", resumeHandler.UploadResume)
		api.DELETE("/cleanup-file/:file_id", resumeHandler.CleanupFile)
		api.POST("/bulk-cleanup", resumeHandler.BulkCleanup)
		api.POST("/validate-job-description", jobHandler.ValidateJobDescription)
		api.POST("/extract-job-from-url", jobHandler.ExtractJobFromURL)
		api.POST("/analyze-candidate", analysisHandler.AnalyzeCandidate)
		api.POST("/enrich-profile", enrichHandler.EnrichProfile)
	}
	return router, store
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func multipartUpload(t *testing.T, path, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})
	w := doJSON(router, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
	if resp.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
}

func TestUploadResume(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{reply: resumeReply})

	req := multipartUpload(t, "/api/upload-resume", "resume.txt", "John Doe\nBackend engineer.", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.UploadResumeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.FileID == "" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.ResumeData == nil || resp.ResumeData.Name != "John Doe" {
		t.Errorf("ResumeData = %+v", resp.ResumeData)
	}
}

func TestUploadResumeMissingFile(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})
	w := doJSON(router, http.MethodPost, "/api/upload-resume", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != string(models.ErrValidation) {
		t.Errorf("ErrorCode = %q, want validation_error", resp.ErrorCode)
	}
}

func TestUploadResumeDangerousFileRejected(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	req := multipartUpload(t, "/api/upload-resume", "tool.exe", "MZ", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUploadResumeCleansUpOnParseFailure(t *testing.T) {
	router, store := newTestRouter(t, &scriptedOracle{reply: "not json"})

	req := multipartUpload(t, "/api/upload-resume", "resume.txt", "John Doe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	// The unparseable upload must not linger on disk
	if deleted := store.CleanupOld(0); deleted != 0 {
		t.Errorf("upload directory still holds %d files", deleted)
	}
}

func TestValidateJobDescriptionEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	job := models.JobDescription{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Description: "We are hiring a backend engineer to build and run Go services in production.",
	}
	w := doJSON(router, http.MethodPost, "/api/validate-job-description", job)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.ValidateJobResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Details.Title != job.Title {
		t.Errorf("resp = %+v", resp)
	}

	// Validation is idempotent: a second identical request matches
	w2 := doJSON(router, http.MethodPost, "/api/validate-job-description", job)
	if w2.Code != http.StatusOK || w2.Body.String() != w.Body.String() {
		t.Errorf("second validation differs: %s vs %s", w2.Body.String(), w.Body.String())
	}
}

func TestValidateJobDescriptionRejectsShortDescription(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	job := models.JobDescription{Title: "Engineer", Company: "Acme", Description: "short"}
	w := doJSON(router, http.MethodPost, "/api/validate-job-description", job)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.ErrorCode != string(models.ErrValidation) {
		t.Errorf("ErrorCode = %q", resp.ErrorCode)
	}
}

func TestExtractJobFromURLMissingURL(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})
	w := doJSON(router, http.MethodPost, "/api/extract-job-from-url", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeCandidateMissingFileID(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})
	w := doJSON(router, http.MethodPost, "/api/analyze-candidate", map[string]any{
		"job_description": map[string]string{"title": "Engineer"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeCandidateUnknownFileID(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})
	w := doJSON(router, http.MethodPost, "/api/analyze-candidate", models.AnalyzeCandidateRequest{
		FileID: "missing-id",
		JobDescription: models.JobDescription{
			Title:       "Backend Engineer",
			Company:     "Acme Corp",
			Description: "We are hiring a backend engineer to build and run Go services in production.",
		},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body = %s", w.Code, w.Body.String())
	}
	var resp models.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.ErrorCode != string(models.ErrNotFound) {
		t.Errorf("ErrorCode = %q, want not_found", resp.ErrorCode)
	}
}

func TestCleanupFileUnknownID(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	req := httptest.NewRequest(http.MethodDelete, "/api/cleanup-file/no-such-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCleanupFileLifecycle(t *testing.T) {
	router, store := newTestRouter(t, &scriptedOracle{})

	fileID, err := store.Save([]byte("resume"), "resume.txt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cleanup-file/%s", fileID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// Deleting again reports not found
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cleanup-file/%s", fileID), nil))
	if w2.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w2.Code)
	}
}

func TestBulkCleanup(t *testing.T) {
	router, store := newTestRouter(t, &scriptedOracle{})

	if _, err := store.Save([]byte("resume"), "resume.txt"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	w := doJSON(router, http.MethodPost, "/api/bulk-cleanup?max_age_hours=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.BulkCleanupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Fresh files survive an age-based cleanup
	if !resp.Success || resp.DeletedCount != 0 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestEnrichProfileInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	req := httptest.NewRequest(http.MethodPost, "/api/enrich-profile", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestEnrichProfileNoURLs(t *testing.T) {
	router, _ := newTestRouter(t, &scriptedOracle{})

	w := doJSON(router, http.MethodPost, "/api/enrich-profile", models.EnrichProfileRequest{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.EnrichProfileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Errorf("resp = %+v", resp)
	}
}

func TestStatusForMapping(t *testing.T) {
	tests := []struct {
		code models.ErrorCode
		want int
	}{
		{models.ErrValidation, http.StatusBadRequest},
		{models.ErrNotFound, http.StatusNotFound},
		{models.ErrFetch, http.StatusBadGateway},
		{models.ErrUpstream, http.StatusBadGateway},
		{models.ErrParse, http.StatusBadGateway},
		{models.ErrorCode("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
