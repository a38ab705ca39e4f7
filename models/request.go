package models

// UploadResumeResponse is returned by POST /api/upload-resume
// @Description Resume upload result with parsed profile
type UploadResumeResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	FileID     string      `json:"file_id"`
	ResumeData *ResumeData `json:"resume_data,omitempty"`
}

// AnalyzeCandidateRequest is the body of POST /api/analyze-candidate
// @Description Candidate analysis request referencing an uploaded resume
type AnalyzeCandidateRequest struct {
	FileID         string         `json:"file_id" binding:"required"`
	JobDescription JobDescription `json:"job_description" binding:"required"`
	LinkedInURL    string         `json:"linkedin_url,omitempty"`
	GitHubURL      string         `json:"github_url,omitempty"`
	PortfolioURL   string         `json:"portfolio_url,omitempty"`
}

// AnalyzeCandidateResponse is returned by POST /api/analyze-candidate
// @Description Candidate analysis result
type AnalyzeCandidateResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Analysis *CandidateAnalysis `json:"analysis,omitempty"`
}

// EnrichProfileRequest is the body of POST /api/enrich-profile
// @Description Profile enrichment request with optional social URLs
type EnrichProfileRequest struct {
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// EnrichProfileResponse is returned by POST /api/enrich-profile
// @Description Profile enrichment result
type EnrichProfileResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Enrichment *ProfileEnrichment `json:"enrichment,omitempty"`
}

// ValidateJobResponse is returned by POST /api/validate-job-description
// @Description Job description validation result
type ValidateJobResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details JobDescriptionFacts `json:"details"`
}

// JobDescriptionFacts summarizes a validated job description
type JobDescriptionFacts struct {
	Title                string `json:"title"`
	Company              string `json:"company"`
	DescriptionLength    int    `json:"description_length"`
	RequiredSkillsCount  int    `json:"required_skills_count"`
	PreferredSkillsCount int    `json:"preferred_skills_count"`
}

// ExtractJobRequest is the body of POST /api/extract-job-from-url
type ExtractJobRequest struct {
	JobURL string `json:"job_url" binding:"required"`
}

// ExtractJobResponse is returned by POST /api/extract-job-from-url
// @Description Job description extracted from a URL
type ExtractJobResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	JobDescription *JobDescription `json:"job_description,omitempty"`
}

// ComprehensiveAnalysisResponse is returned by POST /api/comprehensive-analysis
// @Description One-shot analysis result with extracted URLs and qualitative details
type ComprehensiveAnalysisResponse struct {
	Success         bool               `json:"success"`
	Message         string             `json:"message"`
	Analysis        *CandidateAnalysis `json:"analysis,omitempty"`
	ExtractedURLs   *SocialURLs        `json:"extracted_urls,omitempty"`
	AnalysisDetails *AnalysisDetails   `json:"analysis_details,omitempty"`
}

// CleanupResponse is returned by DELETE /api/cleanup-file/{file_id}
type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BulkCleanupResponse is returned by POST /api/bulk-cleanup
// @Description Bulk cleanup result
type BulkCleanupResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// ErrorResponse is the standard error envelope
// @Description Standard error response
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"Job description is too short"`
	ErrorCode string `json:"error_code,omitempty" example:"validation_error"`
}

// HealthResponse is returned by GET /health
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
