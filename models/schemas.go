package models

import (
	"encoding/json"
	"time"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// Gemini occasionally returns a lone string where an array was requested.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	*f = []string{}
	return nil
}

// ExperienceItem is a single work experience entry on a resume
type ExperienceItem struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationItem is a single education entry on a resume
type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectItem is a single project entry on a resume
type ProjectItem struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Technologies FlexibleStringSlice `json:"technologies,omitempty"`
}

// ResumeData is the structured resume record produced by AI parsing.
// It is never mutated after parsing; each analysis builds a fresh one.
type ResumeData struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Location       string           `json:"location,omitempty"`
	Education      []EducationItem  `json:"education"`
	Skills         []string         `json:"skills"`
	Experience     []ExperienceItem `json:"experience"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	Projects       []ProjectItem    `json:"projects,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	LinkedInURL    string           `json:"linkedin_url,omitempty"`
	GitHubURL      string           `json:"github_url,omitempty"`
	PortfolioURL   string           `json:"portfolio_url,omitempty"`
}

// SocialURLs holds profile links extracted from a resume
type SocialURLs struct {
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	PortfolioURL string   `json:"portfolio_url,omitempty"`
	OtherURLs    []string `json:"other_urls,omitempty"`
}

// JobDescription is the normalized job posting record
type JobDescription struct {
	Title                 string              `json:"title"`
	Company               string              `json:"company"`
	Description           string              `json:"description"`
	RequiredSkills        FlexibleStringSlice `json:"required_skills"`
	PreferredSkills       FlexibleStringSlice `json:"preferred_skills"`
	ExperienceLevel       string              `json:"experience_level,omitempty"`
	EducationRequirements FlexibleStringSlice `json:"education_requirements"`
	Location              string              `json:"location,omitempty"`
}

// LinkedInProfile is best-effort data scraped from a LinkedIn page
type LinkedInProfile struct {
	Headline       string              `json:"headline,omitempty"`
	Summary        string              `json:"summary,omitempty"`
	Experience     []map[string]string `json:"experience,omitempty"`
	Education      []map[string]string `json:"education,omitempty"`
	Skills         []string            `json:"skills,omitempty"`
	Endorsements   map[string]int      `json:"endorsements,omitempty"`
	Connections    int                 `json:"connections,omitempty"`
	Certifications []string            `json:"certifications,omitempty"`
}

// Repository is a single GitHub repository summary
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	URL         string `json:"url,omitempty"`
}

// GitHubProfile is profile data fetched from the GitHub REST API
type GitHubProfile struct {
	Username          string         `json:"username"`
	Name              string         `json:"name,omitempty"`
	Bio               string         `json:"bio,omitempty"`
	PublicRepos       int            `json:"public_repos"`
	Followers         int            `json:"followers"`
	Following         int            `json:"following"`
	Repositories      []Repository   `json:"repositories"`
	Languages         map[string]int `json:"languages"`
	ContributionStats map[string]any `json:"contribution_stats,omitempty"`
	TopRepositories   []Repository   `json:"top_repositories"`
}

// Portfolio is heuristically extracted data from a personal website
type Portfolio struct {
	URL          string            `json:"url"`
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	Technologies []string          `json:"technologies,omitempty"`
	Projects     []PortfolioItem   `json:"projects,omitempty"`
	ContactInfo  map[string]any    `json:"contact_info,omitempty"`
	MetaTags     map[string]string `json:"meta_tags,omitempty"`
}

// PortfolioItem is a project section detected on a portfolio page
type PortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ProfileEnrichment bundles the best-effort social profile fetches.
// Any sub-record may be nil if its URL was not supplied or the fetch failed.
type ProfileEnrichment struct {
	LinkedIn  *LinkedInProfile `json:"linkedin,omitempty"`
	GitHub    *GitHubProfile   `json:"github,omitempty"`
	Portfolio *Portfolio       `json:"portfolio,omitempty"`
}

// IsEmpty reports whether no enrichment source produced data
func (p *ProfileEnrichment) IsEmpty() bool {
	return p == nil || (p.LinkedIn == nil && p.GitHub == nil && p.Portfolio == nil)
}

// ScoreBreakdown is the 145-point scoring contract: resume_match out of 100
// plus bonus points for LinkedIn (20), GitHub (15) and portfolio (10).
// TotalScore is always the sum of the four sub-scores.
type ScoreBreakdown struct {
	ResumeMatch    float64 `json:"resume_match"`
	LinkedInScore  float64 `json:"linkedin_score"`
	GitHubScore    float64 `json:"github_score"`
	PortfolioScore float64 `json:"portfolio_score"`
	TotalScore     float64 `json:"total_score"`
	Explanation    string  `json:"explanation"`
}

// Sub-score caps for the 145-point scale
const (
	MaxResumeMatch    = 100.0
	MaxLinkedInScore  = 20.0
	MaxGitHubScore    = 15.0
	MaxPortfolioScore = 10.0
	MaxTotalScore     = MaxResumeMatch + MaxLinkedInScore + MaxGitHubScore + MaxPortfolioScore
)

// CandidateAnalysis is the terminal analysis artifact, created once per
// request and never mutated afterwards
type CandidateAnalysis struct {
	CandidateName     string             `json:"candidate_name,omitempty"`
	ResumeData        ResumeData         `json:"resume_data"`
	JobDescription    JobDescription     `json:"job_description"`
	ProfileEnrichment *ProfileEnrichment `json:"profile_enrichment,omitempty"`
	ScoreBreakdown    ScoreBreakdown     `json:"score_breakdown"`
	Recommendations   []string           `json:"recommendations"`
	RedFlags          []string           `json:"red_flags"`
	AnalysisTimestamp time.Time          `json:"analysis_timestamp"`
}

// ScoringResult is the full output of the suitability scoring call
type ScoringResult struct {
	ScoreBreakdown  ScoreBreakdown  `json:"score_breakdown"`
	Recommendations []string        `json:"recommendations"`
	RedFlags        []string        `json:"red_flags"`
	Details         AnalysisDetails `json:"details"`
}

// AnalysisDetails carries the qualitative extras from the scoring call
type AnalysisDetails struct {
	Strengths                   []string `json:"strengths"`
	Weaknesses                  []string `json:"weaknesses"`
	MissingSkills               []string `json:"missing_skills"`
	FitAssessment               string   `json:"fit_assessment"`
	SuggestedInterviewQuestions []string `json:"suggested_interview_questions"`
}
