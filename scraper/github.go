package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/utils"
)

// githubUser mirrors the GitHub REST API user object
type githubUser struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// githubRepo mirrors the GitHub REST API repository object
type githubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	UpdatedAt   string `json:"updated_at"`
	HTMLURL     string `json:"html_url"`
}

// FetchGitHubProfile fetches a candidate's GitHub profile via the public
// REST API, aggregating repositories and language usage
func (s *Service) FetchGitHubProfile(ctx context.Context, profileURL string) (*models.GitHubProfile, error) {
	username, err := ExtractGitHubUsername(profileURL)
	if err != nil {
		return nil, err
	}

	profile := &models.GitHubProfile{
		Username:     username,
		Repositories: []models.Repository{},
		Languages:    map[string]int{},
	}

	var user githubUser
	if err := s.githubGet(ctx, fmt.Sprintf("/users/%s", username), &user); err != nil {
		return nil, fmt.Errorf("github user lookup failed: %w", err)
	}
	profile.Name = user.Name
	profile.Bio = user.Bio
	profile.PublicRepos = user.PublicRepos
	profile.Followers = user.Followers
	profile.Following = user.Following

	var repos []githubRepo
	if err := s.githubGet(ctx, fmt.Sprintf("/users/%s/repos?sort=updated&per_page=100", username), &repos); err != nil {
		// Profile data alone is still useful
		log.Printf("[Scraper] GitHub repo listing failed for %s: %v", username, err)
		return profile, nil
	}

	// Process the 20 most recently updated repositories
	if len(repos) > 20 {
		repos = repos[:20]
	}
	for _, r := range repos {
		profile.Repositories = append(profile.Repositories, models.Repository{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			UpdatedAt:   r.UpdatedAt,
			URL:         r.HTMLURL,
		})
		if r.Language != "" {
			profile.Languages[r.Language]++
		}
	}

	// Top repositories by stars
	top := make([]models.Repository, len(profile.Repositories))
	copy(top, profile.Repositories)
	sort.Slice(top, func(i, j int) bool { return top[i].Stars > top[j].Stars })
	if len(top) > 10 {
		top = top[:10]
	}
	profile.TopRepositories = top

	topLanguage := ""
	maxCount := 0
	for lang, count := range profile.Languages {
		if count > maxCount {
			topLanguage, maxCount = lang, count
		}
	}
	profile.ContributionStats = map[string]any{
		"total_repos":    profile.PublicRepos,
		"languages_used": len(profile.Languages),
		"top_language":   topLanguage,
	}

	return profile, nil
}

// githubGet performs an authenticated GitHub API request and decodes JSON
func (s *Service) githubGet(ctx context.Context, path string, out any) error {
	resp, err := utils.RetryHTTP(ctx, s.retry, func() (*http.Response, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, s.githubAPIBase+path, nil)
		if reqErr != nil {
			return nil, reqErr
		}
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		req.Header.Set("User-Agent", "HireAgent/1.0")
		if s.githubToken != "" {
			req.Header.Set("Authorization", "Bearer "+s.githubToken)
		}
		return s.client.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ExtractGitHubUsername extracts the username from a github.com profile URL
func ExtractGitHubUsername(profileURL string) (string, error) {
	parsed, err := url.Parse(profileURL)
	if err != nil {
		return "", fmt.Errorf("invalid GitHub URL: %w", err)
	}
	host := strings.ToLower(parsed.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", fmt.Errorf("not a github.com URL: %s", profileURL)
	}

	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			return part, nil
		}
	}
	return "", fmt.Errorf("could not extract GitHub username from URL: %s", profileURL)
}
