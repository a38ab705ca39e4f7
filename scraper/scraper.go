// Package scraper implements best-effort profile enrichment and page-text
// extraction for job postings. Enrichment failures never propagate: each
// source independently degrades to an absent sub-record.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hireagent/backend/config"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/utils"
)

// maxBodyBytes caps how much of a remote page is read
const maxBodyBytes = 5 * 1024 * 1024

// Service fetches and normalizes external profile and job pages
type Service struct {
	client        *http.Client
	retry         utils.RetryConfig
	githubAPIBase string
	githubToken   string
}

// NewService creates a scraping service from configuration
func NewService(cfg *config.Config) *Service {
	retry := utils.DefaultRetryConfig
	if cfg.MaxRetries > 0 {
		retry.MaxRetries = cfg.MaxRetries
	}
	return &Service{
		client:        utils.NewHTTPClient(time.Duration(cfg.ScrapingTimeoutSeconds) * time.Second),
		retry:         retry,
		githubAPIBase: "https://api.github.com",
		githubToken:   cfg.GitHubToken,
	}
}

// EnrichProfile fetches the supplied social URLs concurrently and returns
// whatever succeeded. It never fails the enclosing analysis: a nil URL or a
// failed fetch simply leaves the corresponding sub-record absent.
func (s *Service) EnrichProfile(ctx context.Context, linkedinURL, githubURL, portfolioURL string) *models.ProfileEnrichment {
	enrichment := &models.ProfileEnrichment{}

	var wg sync.WaitGroup

	if linkedinURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			profile, err := s.ScrapeLinkedIn(ctx, linkedinURL)
			if err != nil {
				log.Printf("[Scraper] LinkedIn enrichment failed for %s: %v", linkedinURL, err)
				return
			}
			enrichment.LinkedIn = profile
		}()
	}

	if githubURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			profile, err := s.FetchGitHubProfile(ctx, githubURL)
			if err != nil {
				log.Printf("[Scraper] GitHub enrichment failed for %s: %v", githubURL, err)
				return
			}
			enrichment.GitHub = profile
		}()
	}

	if portfolioURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			portfolio, err := s.ScrapePortfolio(ctx, portfolioURL)
			if err != nil {
				log.Printf("[Scraper] Portfolio enrichment failed for %s: %v", portfolioURL, err)
				return
			}
			enrichment.Portfolio = portfolio
		}()
	}

	wg.Wait()
	return enrichment
}

// FetchPageText fetches a URL and extracts its visible text content,
// discarding markup, scripts and styles
func (s *Service) FetchPageText(ctx context.Context, pageURL string) (string, error) {
	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", models.NewFetchError(fmt.Sprintf("failed to fetch page from %s", pageURL), err)
	}

	doc.Find("script, style, noscript").Remove()
	return collapseWhitespace(doc.Text()), nil
}

// fetchDocument fetches a URL with retry and parses it into a goquery document
func (s *Service) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	resp, err := utils.RetryHTTP(ctx, s.retry, func() (*http.Response, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if reqErr != nil {
			return nil, reqErr
		}
		utils.SetBrowserHeaders(req)
		return s.client.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// collapseWhitespace joins page text into single-space-separated chunks
func collapseWhitespace(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}
