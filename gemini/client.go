package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/hireagent/backend/config"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/utils"
)

// Generator is the raw text-generation capability behind the client.
// Tests substitute it with a stub returning crafted structured replies.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Client wraps the Gemini API for structured extraction and scoring
type Client struct {
	gen   Generator
	retry utils.RetryConfig
}

// NewClient creates a Gemini client from configuration
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := &geminiModel{
		client:          genaiClient,
		modelName:       cfg.GeminiModel,
		temperature:     float32(cfg.GeminiTemperature),
		maxOutputTokens: int32(cfg.GeminiMaxOutputTokens),
	}

	return NewClientWithGenerator(model, cfg), nil
}

// NewClientWithGenerator creates a client over an explicit generator
func NewClientWithGenerator(gen Generator, cfg *config.Config) *Client {
	retry := utils.DefaultRetryConfig
	if cfg != nil && cfg.MaxRetries > 0 {
		retry.MaxRetries = cfg.MaxRetries
	}
	return &Client{gen: gen, retry: retry}
}

// geminiModel is the production Generator backed by the Gemini API
type geminiModel struct {
	client          *genai.Client
	modelName       string
	temperature     float32
	maxOutputTokens int32
}

func (m *geminiModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(m.temperature),
		MaxOutputTokens: m.maxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

// generate invokes the oracle with retry on transient upstream failure.
// Malformed replies are never retried; only the call itself is.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	text, err := utils.RetryDo(ctx, c.retry, func() (string, error) {
		out, genErr := c.gen.GenerateContent(ctx, prompt)
		if genErr != nil {
			return "", classifyUpstream(genErr)
		}
		return out, nil
	})
	if err != nil {
		return "", models.NewUpstreamError("AI analysis service unavailable", err)
	}
	return CleanJSON(text), nil
}

// classifyUpstream maps Gemini API failures onto retryable error shapes
func classifyUpstream(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Code >= 500 {
			return &utils.HTTPStatusError{StatusCode: apiErr.Code}
		}
	}
	return err
}

// CleanJSON strips markdown code fences Gemini wraps around JSON replies
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// parsedResume mirrors the JSON shape requested from the resume prompt
type parsedResume struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
	} `json:"personal_info"`
	SocialURLs          models.SocialURLs        `json:"social_urls"`
	ProfessionalSummary string                   `json:"professional_summary"`
	Skills              []string                 `json:"skills"`
	Experience          []models.ExperienceItem  `json:"experience"`
	Education           []models.EducationItem   `json:"education"`
	Certifications      []string                 `json:"certifications"`
	Projects            []models.ProjectItem     `json:"projects"`
	Languages           []string                 `json:"languages"`
}

// ParseResume extracts structured resume data and any social profile URLs
// found in the raw text
func (c *Client) ParseResume(ctx context.Context, resumeText string) (*models.ResumeData, *models.SocialURLs, error) {
	prompt := fmt.Sprintf(`Analyze the following resume text and extract information in JSON format.

Required JSON structure:
{
  "personal_info": {
    "name": "Full name",
    "email": "email address",
    "phone": "phone number",
    "location": "location/address"
  },
  "social_urls": {
    "linkedin_url": "LinkedIn profile URL if found",
    "github_url": "GitHub profile URL if found",
    "portfolio_url": "Portfolio/website URL if found",
    "other_urls": ["other professional URLs"]
  },
  "professional_summary": "Brief professional summary",
  "skills": ["skill1", "skill2", "skill3"],
  "experience": [
    {
      "title": "Job title",
      "company": "Company name",
      "duration": "Time period",
      "description": "Job description"
    }
  ],
  "education": [
    {
      "degree": "Degree name",
      "institution": "School/University",
      "year": "Graduation year",
      "gpa": "GPA if mentioned"
    }
  ],
  "certifications": ["cert1", "cert2"],
  "projects": [
    {
      "name": "Project name",
      "description": "Project description",
      "technologies": ["tech1", "tech2"]
    }
  ],
  "languages": ["language1", "language2"]
}

Resume text:
%s

Extract all available information. For social URLs, look for:
- LinkedIn: linkedin.com/in/...
- GitHub: github.com/...
- Portfolio: personal websites, portfolio sites
- Any other professional URLs

If information is not found, use empty strings or empty arrays.
Return ONLY the JSON object, no markdown formatting, no explanation.`, resumeText)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, nil, err
	}

	var parsed parsedResume
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		log.Printf("[Gemini] Failed to parse resume response: %.200s", text)
		return nil, nil, models.NewParseError("failed to parse resume data", err)
	}

	resume := &models.ResumeData{
		Name:           parsed.PersonalInfo.Name,
		Email:          parsed.PersonalInfo.Email,
		Phone:          parsed.PersonalInfo.Phone,
		Location:       parsed.PersonalInfo.Location,
		Summary:        parsed.ProfessionalSummary,
		Skills:         parsed.Skills,
		Experience:     parsed.Experience,
		Education:      parsed.Education,
		Certifications: parsed.Certifications,
		Projects:       parsed.Projects,
		Languages:      parsed.Languages,
		LinkedInURL:    parsed.SocialURLs.LinkedInURL,
		GitHubURL:      parsed.SocialURLs.GitHubURL,
		PortfolioURL:   parsed.SocialURLs.PortfolioURL,
	}

	log.Printf("[Gemini] Parsed resume: name=%s, skills=%d, experience=%d entries",
		resume.Name, len(resume.Skills), len(resume.Experience))

	urls := parsed.SocialURLs
	return resume, &urls, nil
}

// ExtractJobDescription extracts a normalized job description from page text
func (c *Client) ExtractJobDescription(ctx context.Context, pageText string) (*models.JobDescription, error) {
	// Truncate to stay within token limits
	maxLen := 8000
	if len(pageText) > maxLen {
		pageText = pageText[:maxLen]
	}

	prompt := fmt.Sprintf(`Extract the job description information from the following webpage content and return it in JSON format.

Required JSON structure:
{
  "title": "Job title",
  "company": "Company name",
  "description": "Full job description",
  "required_skills": ["skill1", "skill2"],
  "preferred_skills": ["skill1", "skill2"],
  "experience_level": "Entry/Mid/Senior/Lead",
  "education_requirements": ["requirement1", "requirement2"],
  "location": "Job location"
}

Webpage content:
%s

Extract the most relevant job information. If some fields are not found, use empty strings or empty arrays.
Return ONLY the JSON object, no markdown formatting, no explanation.`, pageText)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var job models.JobDescription
	if err := json.Unmarshal([]byte(text), &job); err != nil {
		log.Printf("[Gemini] Failed to parse job description response: %.200s", text)
		return nil, models.NewParseError("failed to parse job description from webpage", err)
	}
	return &job, nil
}

// analysisReply mirrors the JSON shape requested from the scoring prompt
type analysisReply struct {
	ResumeMatch                 float64  `json:"resume_match"`
	LinkedInScore               float64  `json:"linkedin_score"`
	GitHubScore                 float64  `json:"github_score"`
	PortfolioScore              float64  `json:"portfolio_score"`
	Explanation                 string   `json:"explanation"`
	HRRecommendations           []string `json:"hr_recommendations"`
	RedFlags                    []string `json:"red_flags"`
	Strengths                   []string `json:"strengths"`
	Weaknesses                  []string `json:"weaknesses"`
	MissingSkills               []string `json:"missing_skills"`
	FitAssessment               string   `json:"fit_assessment"`
	SuggestedInterviewQuestions []string `json:"suggested_interview_questions"`
}

// AnalyzeCandidate scores a candidate against a job description. Sub-scores
// follow the 145-point scale: resume match out of 100 plus bonus points for
// LinkedIn (20), GitHub (15) and portfolio (10). The total is always computed
// locally as the sum of the clamped sub-scores, and sources absent from the
// enrichment bundle score zero regardless of what the oracle returned.
func (c *Client) AnalyzeCandidate(ctx context.Context, resume *models.ResumeData, job *models.JobDescription, enrichment *models.ProfileEnrichment) (*models.ScoringResult, error) {
	resumeJSON, _ := json.MarshalIndent(resume, "", "  ")
	jobJSON, _ := json.MarshalIndent(job, "", "  ")

	enrichmentSection := "No social profile data available. Set linkedin_score, github_score and portfolio_score to 0."
	if !enrichment.IsEmpty() {
		enrichmentJSON, _ := json.MarshalIndent(enrichment, "", "  ")
		enrichmentSection = fmt.Sprintf(`PROFILE ENRICHMENT:
%s

Award bonus points only for sources present above; score 0 for missing sources.`, enrichmentJSON)
	}

	prompt := fmt.Sprintf(`Perform a comprehensive analysis of this candidate for the given job position.

CANDIDATE RESUME:
%s

JOB DESCRIPTION:
%s

%s

Provide analysis in the following JSON format:
{
  "resume_match": 75.0,
  "linkedin_score": 12.0,
  "github_score": 10.0,
  "portfolio_score": 5.0,
  "explanation": "Comprehensive paragraph explaining the overall assessment and hiring recommendation",
  "hr_recommendations": [
    "Strong candidate - recommend proceeding to interview stage",
    "Focus interview questions on cloud platform experience"
  ],
  "red_flags": [
    "Employment gap from 2022-2023 needs explanation"
  ],
  "strengths": ["Strong technical skills in required technologies"],
  "weaknesses": ["Limited experience with specific framework X"],
  "missing_skills": ["Docker containerization"],
  "fit_assessment": "EXCELLENT/GOOD/FAIR/POOR",
  "suggested_interview_questions": [
    "Can you explain your experience with microservices architecture?"
  ]
}

Scoring Guidelines:
- resume_match: 0-100 points (how well the resume matches the job requirements)
- linkedin_score: 0-20 bonus points (LinkedIn profile quality, if data present)
- github_score: 0-15 bonus points (GitHub activity and code quality signals, if data present)
- portfolio_score: 0-10 bonus points (portfolio relevance, if data present)

Be thorough and specific in your analysis.
Return ONLY the JSON object, no markdown formatting, no explanation outside the JSON.`, resumeJSON, jobJSON, enrichmentSection)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var reply analysisReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		log.Printf("[Gemini] Failed to parse analysis response: %.200s", text)
		return nil, models.NewParseError("failed to parse analysis results", err)
	}

	breakdown := models.ScoreBreakdown{
		ResumeMatch: clamp(reply.ResumeMatch, models.MaxResumeMatch),
		Explanation: reply.Explanation,
	}
	if enrichment != nil && enrichment.LinkedIn != nil {
		breakdown.LinkedInScore = clamp(reply.LinkedInScore, models.MaxLinkedInScore)
	}
	if enrichment != nil && enrichment.GitHub != nil {
		breakdown.GitHubScore = clamp(reply.GitHubScore, models.MaxGitHubScore)
	}
	if enrichment != nil && enrichment.Portfolio != nil {
		breakdown.PortfolioScore = clamp(reply.PortfolioScore, models.MaxPortfolioScore)
	}
	breakdown.TotalScore = breakdown.ResumeMatch + breakdown.LinkedInScore + breakdown.GitHubScore + breakdown.PortfolioScore

	log.Printf("[Gemini] Candidate scored: resume=%.1f total=%.1f fit=%s",
		breakdown.ResumeMatch, breakdown.TotalScore, reply.FitAssessment)

	return &models.ScoringResult{
		ScoreBreakdown:  breakdown,
		Recommendations: reply.HRRecommendations,
		RedFlags:        reply.RedFlags,
		Details: models.AnalysisDetails{
			Strengths:                   reply.Strengths,
			Weaknesses:                  reply.Weaknesses,
			MissingSkills:               reply.MissingSkills,
			FitAssessment:               reply.FitAssessment,
			SuggestedInterviewQuestions: reply.SuggestedInterviewQuestions,
		},
	}, nil
}

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
