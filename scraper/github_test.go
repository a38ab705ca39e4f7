package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hireagent/backend/utils"
)

func newTestService(t *testing.T, server *httptest.Server) *Service {
	t.Helper()
	return &Service{
		client: server.Client(),
		retry: utils.RetryConfig{
			MaxRetries:  1,
			InitialWait: time.Millisecond,
			MaxWait:     time.Millisecond,
			Multiplier:  1.0,
		},
		githubAPIBase: server.URL,
	}
}

func TestExtractGitHubUsername(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain profile", "https://github.com/johndoe", "johndoe", false},
		{"www prefix", "https://www.github.com/johndoe", "johndoe", false},
		{"trailing slash", "https://github.com/johndoe/", "johndoe", false},
		{"repo url yields owner", "https://github.com/johndoe/myrepo", "johndoe", false},
		{"uppercase host", "https://GitHub.com/johndoe", "johndoe", false},
		{"wrong host", "https://gitlab.com/johndoe", "", true},
		{"no username", "https://github.com/", "", true},
		{"not a url", "://bad", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractGitHubUsername(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractGitHubUsername(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractGitHubUsername(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFetchGitHubProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/johndoe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "John Doe", "bio": "Engineer", "public_repos": 12, "followers": 30, "following": 5}`))
	})
	mux.HandleFunc("/users/johndoe/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name": "small", "language": "Go", "stargazers_count": 2, "forks_count": 0, "html_url": "https://github.com/johndoe/small"},
			{"name": "big", "language": "Go", "stargazers_count": 50, "forks_count": 7, "html_url": "https://github.com/johndoe/big"},
			{"name": "scripts", "language": "Python", "stargazers_count": 10, "forks_count": 1, "html_url": "https://github.com/johndoe/scripts"},
			{"name": "dotfiles", "language": "", "stargazers_count": 0, "forks_count": 0, "html_url": "https://github.com/johndoe/dotfiles"}
		]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestService(t, server)
	profile, err := s.FetchGitHubProfile(context.Background(), "https://github.com/johndoe")
	if err != nil {
		t.Fatalf("FetchGitHubProfile: %v", err)
	}

	if profile.Username != "johndoe" || profile.Name != "John Doe" {
		t.Errorf("profile identity = %q/%q", profile.Username, profile.Name)
	}
	if profile.PublicRepos != 12 {
		t.Errorf("PublicRepos = %d, want 12", profile.PublicRepos)
	}
	if len(profile.Repositories) != 4 {
		t.Errorf("Repositories = %d, want 4", len(profile.Repositories))
	}
	if profile.Languages["Go"] != 2 || profile.Languages["Python"] != 1 {
		t.Errorf("Languages = %v", profile.Languages)
	}
	if _, ok := profile.Languages[""]; ok {
		t.Error("empty language counted")
	}
	if len(profile.TopRepositories) == 0 || profile.TopRepositories[0].Name != "big" {
		t.Errorf("TopRepositories = %+v, want big first", profile.TopRepositories)
	}
	if profile.ContributionStats["top_language"] != "Go" {
		t.Errorf("top_language = %v, want Go", profile.ContributionStats["top_language"])
	}
	if profile.ContributionStats["languages_used"] != 2 {
		t.Errorf("languages_used = %v, want 2", profile.ContributionStats["languages_used"])
	}
}

func TestFetchGitHubProfileUserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := newTestService(t, server)
	if _, err := s.FetchGitHubProfile(context.Background(), "https://github.com/nobody"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestFetchGitHubProfileRepoListingFailureKeepsProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/johndoe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "John Doe", "public_repos": 3}`))
	})
	mux.HandleFunc("/users/johndoe/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestService(t, server)
	profile, err := s.FetchGitHubProfile(context.Background(), "https://github.com/johndoe")
	if err != nil {
		t.Fatalf("FetchGitHubProfile: %v", err)
	}
	if profile.Name != "John Doe" {
		t.Errorf("Name = %q, want John Doe", profile.Name)
	}
	if len(profile.Repositories) != 0 {
		t.Errorf("Repositories = %d, want 0", len(profile.Repositories))
	}
}

func TestGitHubGetSendsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := newTestService(t, server)
	s.githubToken = "secret-token"

	var out map[string]any
	if err := s.githubGet(context.Background(), "/users/johndoe", &out); err != nil {
		t.Fatalf("githubGet: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want Bearer secret-token", gotAuth)
	}
}
