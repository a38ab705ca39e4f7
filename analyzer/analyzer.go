// Package analyzer orchestrates the candidate-analysis pipeline:
// upload -> parse -> (job resolution | profile enrichment) -> score -> aggregate.
package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/hireagent/backend/config"
	"github.com/hireagent/backend/gemini"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/scraper"
	"github.com/hireagent/backend/storage"
)

// MinJobDescriptionLength is the minimum length of a pasted job description
const MinJobDescriptionLength = 50

// Analyzer drives the analysis pipeline over its collaborating services
type Analyzer struct {
	cfg     *config.Config
	gemini  *gemini.Client
	scraper *scraper.Service
	store   *storage.FileStore
}

// New creates an analyzer over the given collaborators
func New(cfg *config.Config, geminiClient *gemini.Client, scraperService *scraper.Service, store *storage.FileStore) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		gemini:  geminiClient,
		scraper: scraperService,
		store:   store,
	}
}

// ParseStoredResume extracts text from an uploaded file and parses it
func (a *Analyzer) ParseStoredResume(ctx context.Context, fileID string) (*models.ResumeData, *models.SocialURLs, error) {
	text, err := a.store.ExtractText(fileID)
	if err != nil {
		return nil, nil, err
	}
	return a.gemini.ParseResume(ctx, text)
}

// ValidateJobDescription checks a structured job description for required
// content. Pure validation: identical input yields identical output.
func ValidateJobDescription(job *models.JobDescription) (*models.JobDescriptionFacts, error) {
	if strings.TrimSpace(job.Title) == "" {
		return nil, models.NewValidationError("job title is required")
	}
	if strings.TrimSpace(job.Company) == "" {
		return nil, models.NewValidationError("company name is required")
	}
	if strings.TrimSpace(job.Description) == "" {
		return nil, models.NewValidationError("job description is required")
	}
	if len(job.Description) < MinJobDescriptionLength {
		return nil, models.NewValidationError("job description is too short (minimum %d characters)", MinJobDescriptionLength)
	}
	return &models.JobDescriptionFacts{
		Title:                job.Title,
		Company:              job.Company,
		DescriptionLength:    len(job.Description),
		RequiredSkillsCount:  len(job.RequiredSkills),
		PreferredSkillsCount: len(job.PreferredSkills),
	}, nil
}

// ResolveJobDescription produces a normalized job description from either a
// pasted text or a URL. Text shorter than the minimum is rejected before any
// oracle call is made.
func (a *Analyzer) ResolveJobDescription(ctx context.Context, jobText, jobURL string) (*models.JobDescription, error) {
	if jobURL = strings.TrimSpace(jobURL); jobURL != "" {
		log.Printf("[Analyzer] Extracting job description from URL: %s", jobURL)
		pageText, err := a.scraper.FetchPageText(ctx, jobURL)
		if err != nil {
			return nil, err
		}
		return a.gemini.ExtractJobDescription(ctx, pageText)
	}

	jobText = strings.TrimSpace(jobText)
	if len(jobText) < MinJobDescriptionLength {
		return nil, models.NewValidationError("job description is too short (minimum %d characters)", MinJobDescriptionLength)
	}
	return a.gemini.ExtractJobDescription(ctx, jobText)
}

// AnalyzeCandidate runs the full pipeline for an already-uploaded resume
// against a structured job description
func (a *Analyzer) AnalyzeCandidate(ctx context.Context, req *models.AnalyzeCandidateRequest) (*models.CandidateAnalysis, error) {
	if _, err := ValidateJobDescription(&req.JobDescription); err != nil {
		return nil, err
	}

	resume, socialURLs, err := a.ParseStoredResume(ctx, req.FileID)
	if err != nil {
		return nil, err
	}

	// Explicit URLs take precedence over URLs found in the resume
	linkedinURL := firstNonEmpty(req.LinkedInURL, socialURLs.LinkedInURL)
	githubURL := firstNonEmpty(req.GitHubURL, socialURLs.GitHubURL)
	portfolioURL := firstNonEmpty(req.PortfolioURL, socialURLs.PortfolioURL)

	enrichment := a.scraper.EnrichProfile(ctx, linkedinURL, githubURL, portfolioURL)

	scoring, err := a.gemini.AnalyzeCandidate(ctx, resume, &req.JobDescription, enrichment)
	if err != nil {
		return nil, err
	}

	return aggregate(resume, &req.JobDescription, enrichment, scoring)
}

// ComprehensiveResult bundles the outputs of the one-shot analysis flow
type ComprehensiveResult struct {
	Analysis      *models.CandidateAnalysis
	ExtractedURLs *models.SocialURLs
	Details       *models.AnalysisDetails
}

// ComprehensiveAnalysis is the one-shot flow: save the uploaded resume,
// parse it, resolve the job description (URL, pasted text, or a placeholder
// when neither is usable), enrich from any social URLs found in the resume,
// score, aggregate, and finally delete the uploaded file.
func (a *Analyzer) ComprehensiveAnalysis(ctx context.Context, fileData []byte, filename, jobText, jobURL string) (*ComprehensiveResult, error) {
	fileID, err := a.store.Save(fileData, filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cleanupErr := a.store.Cleanup(fileID); cleanupErr != nil {
			log.Printf("[Analyzer] Failed to clean up file %s: %v", fileID, cleanupErr)
		}
	}()

	text, err := a.store.ExtractText(fileID)
	if err != nil {
		return nil, err
	}

	log.Printf("[Analyzer] Parsing resume and extracting URLs...")
	resume, socialURLs, err := a.gemini.ParseResume(ctx, text)
	if err != nil {
		return nil, err
	}

	// Job resolution and profile enrichment are independent; run them
	// concurrently and join before scoring.
	var (
		wg         sync.WaitGroup
		job        *models.JobDescription
		enrichment *models.ProfileEnrichment
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		job = a.resolveJobOrFallback(ctx, jobText, jobURL)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		enrichment = a.scraper.EnrichProfile(ctx, socialURLs.LinkedInURL, socialURLs.GitHubURL, socialURLs.PortfolioURL)
	}()

	wg.Wait()

	log.Printf("[Analyzer] Performing comprehensive AI analysis...")
	scoring, err := a.gemini.AnalyzeCandidate(ctx, resume, job, enrichment)
	if err != nil {
		return nil, err
	}

	analysis, err := aggregate(resume, job, enrichment, scoring)
	if err != nil {
		return nil, err
	}

	return &ComprehensiveResult{
		Analysis:      analysis,
		ExtractedURLs: socialURLs,
		Details:       &scoring.Details,
	}, nil
}

// resolveJobOrFallback resolves the job description, degrading to a
// placeholder instead of failing the whole analysis
func (a *Analyzer) resolveJobOrFallback(ctx context.Context, jobText, jobURL string) *models.JobDescription {
	if strings.TrimSpace(jobURL) == "" && strings.TrimSpace(jobText) == "" {
		return &models.JobDescription{
			Title:       "General Analysis",
			Company:     "No Company Specified",
			Description: "General resume analysis without specific job requirements.",
		}
	}

	job, err := a.ResolveJobDescription(ctx, jobText, jobURL)
	if err != nil {
		log.Printf("[Analyzer] Failed to resolve job description: %v", err)
		return &models.JobDescription{
			Title:       "Position Analysis",
			Company:     "Unknown Company",
			Description: "Job description could not be extracted from the provided input. Manual review recommended.",
		}
	}
	return job
}

// aggregate assembles the immutable analysis artifact. Pure assembly: the
// only failure mode is a missing required input, which indicates an upstream
// bug.
func aggregate(resume *models.ResumeData, job *models.JobDescription, enrichment *models.ProfileEnrichment, scoring *models.ScoringResult) (*models.CandidateAnalysis, error) {
	if resume == nil || job == nil || scoring == nil {
		return nil, fmt.Errorf("aggregation requires resume, job description and scoring result")
	}

	candidateName := resume.Name
	if candidateName == "" {
		candidateName = "Unknown Candidate"
	}

	analysis := &models.CandidateAnalysis{
		CandidateName:     candidateName,
		ResumeData:        *resume,
		JobDescription:    *job,
		ScoreBreakdown:    scoring.ScoreBreakdown,
		Recommendations:   scoring.Recommendations,
		RedFlags:          scoring.RedFlags,
		AnalysisTimestamp: time.Now(),
	}
	if !enrichment.IsEmpty() {
		analysis.ProfileEnrichment = enrichment
	}
	return analysis, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
