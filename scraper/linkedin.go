package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hireagent/backend/models"
)

// ScrapeLinkedIn attempts a best-effort scrape of a public LinkedIn profile.
// LinkedIn blocks unauthenticated scraping aggressively, so callers must
// expect an empty or partial profile on success and treat failures as
// ordinary absence.
func (s *Service) ScrapeLinkedIn(ctx context.Context, profileURL string) (*models.LinkedInProfile, error) {
	doc, err := s.fetchDocument(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("linkedin fetch failed: %w", err)
	}

	profile := &models.LinkedInProfile{}

	if headline := doc.Find("h2.text-heading-large").First().Text(); headline != "" {
		profile.Headline = strings.TrimSpace(headline)
	}
	if summary := doc.Find(`section[data-section="summary"]`).First().Text(); summary != "" {
		summary = collapseWhitespace(summary)
		if len(summary) > 500 {
			summary = summary[:500]
		}
		profile.Summary = summary
	}

	log.Printf("[Scraper] LinkedIn profile scraped (limited data): %s", profileURL)
	return profile, nil
}
