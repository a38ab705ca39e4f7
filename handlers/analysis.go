package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/analyzer"
	"github.com/hireagent/backend/models"
)

// AnalysisHandler handles candidate analysis requests
type AnalysisHandler struct {
	analyzer *analyzer.Analyzer
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(a *analyzer.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: a}
}

// AnalyzeCandidate scores an uploaded resume against a job description
// @Summary Analyze a candidate
// @Description Score a previously uploaded resume against a structured job description, with optional social profile enrichment
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.AnalyzeCandidateRequest true "Analysis request"
// @Success 200 {object} models.AnalyzeCandidateResponse "Candidate analysis"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Unknown file ID"
// @Failure 502 {object} models.ErrorResponse "Upstream analysis failed"
// @Router /analyze-candidate [post]
func (h *AnalysisHandler) AnalyzeCandidate(c *gin.Context) {
	var req models.AnalyzeCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("invalid request body"))
		return
	}

	analysis, err := h.analyzer.AnalyzeCandidate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeCandidateResponse{
		Success:  true,
		Message:  "Candidate analysis completed successfully",
		Analysis: analysis,
	})
}

// ComprehensiveAnalysis runs the one-shot flow: resume file plus job
// description text or URL in a single multipart request
// @Summary One-shot comprehensive analysis
// @Description Upload a resume and a job description (text or URL) and receive the full analysis in one call
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Param job_url formData string false "Job posting URL"
// @Param job_description formData string false "Pasted job description text"
// @Success 200 {object} models.ComprehensiveAnalysisResponse "Full analysis"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Upstream analysis failed"
// @Router /comprehensive-analysis [post]
func (h *AnalysisHandler) ComprehensiveAnalysis(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, models.NewValidationError("resume file is required"))
		return
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		respondError(c, models.NewValidationError("failed to read uploaded file"))
		return
	}

	jobURL := c.PostForm("job_url")
	jobText := c.PostForm("job_description")

	log.Printf("[AnalysisHandler] Starting comprehensive analysis for file: %s, job_url: %s", header.Filename, jobURL)

	result, err := h.analyzer.ComprehensiveAnalysis(c.Request.Context(), buf.Bytes(), header.Filename, jobText, jobURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ComprehensiveAnalysisResponse{
		Success:         true,
		Message:         "Comprehensive analysis completed successfully",
		Analysis:        result.Analysis,
		ExtractedURLs:   result.ExtractedURLs,
		AnalysisDetails: result.Details,
	})
}
