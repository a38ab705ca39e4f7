package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/analyzer"
	"github.com/hireagent/backend/models"
)

// JobHandler handles job description validation and extraction requests
type JobHandler struct {
	analyzer *analyzer.Analyzer
}

// NewJobHandler creates a new job handler
func NewJobHandler(a *analyzer.Analyzer) *JobHandler {
	return &JobHandler{analyzer: a}
}

// ValidateJobDescription validates a structured job description
// @Summary Validate a job description
// @Description Validate job description fields without invoking any AI call
// @Tags Job
// @Accept json
// @Produce json
// @Param job_description body models.JobDescription true "Job description"
// @Success 200 {object} models.ValidateJobResponse "Validation result"
// @Failure 400 {object} models.ErrorResponse "Invalid job description"
// @Router /validate-job-description [post]
func (h *JobHandler) ValidateJobDescription(c *gin.Context) {
	var job models.JobDescription
	if err := c.ShouldBindJSON(&job); err != nil {
		respondError(c, models.NewValidationError("invalid request body"))
		return
	}

	facts, err := analyzer.ValidateJobDescription(&job)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ValidateJobResponse{
		Success: true,
		Message: "Job description is valid",
		Details: *facts,
	})
}

// ExtractJobFromURL fetches a job posting URL and extracts a normalized
// job description
// @Summary Extract a job description from a URL
// @Description Fetch a job posting page and extract a structured job description with AI
// @Tags Job
// @Accept json
// @Produce json
// @Param request body models.ExtractJobRequest true "Job URL"
// @Success 200 {object} models.ExtractJobResponse "Extracted job description"
// @Failure 400 {object} models.ErrorResponse "Missing URL"
// @Failure 502 {object} models.ErrorResponse "Fetch or extraction failed"
// @Router /extract-job-from-url [post]
func (h *JobHandler) ExtractJobFromURL(c *gin.Context) {
	var req models.ExtractJobRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobURL == "" {
		respondError(c, models.NewValidationError("job URL is required"))
		return
	}

	job, err := h.analyzer.ResolveJobDescription(c.Request.Context(), "", req.JobURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ExtractJobResponse{
		Success:        true,
		Message:        "Job description extracted successfully",
		JobDescription: job,
	})
}
