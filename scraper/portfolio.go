package scraper

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hireagent/backend/models"
)

// techKeywords are technologies detected in portfolio page text
var techKeywords = []string{
	"javascript", "python", "java", "react", "angular", "vue", "node",
	"django", "flask", "spring", "docker", "kubernetes", "aws", "azure",
	"mongodb", "postgresql", "mysql", "redis", "tensorflow", "pytorch",
	"git", "jenkins", "terraform", "html", "css", "typescript", "go",
	"rust", "php", "ruby", "rails", "laravel", "express", "fastapi",
}

var (
	emailRe          = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	projectSectionRe = regexp.MustCompile(`(?i)project|portfolio|work`)
)

// ScrapePortfolio extracts heuristic profile data from a personal website:
// title, meta description, detected technologies, project sections and
// contact information
func (s *Service) ScrapePortfolio(ctx context.Context, portfolioURL string) (*models.Portfolio, error) {
	doc, err := s.fetchDocument(ctx, portfolioURL)
	if err != nil {
		return nil, fmt.Errorf("portfolio fetch failed: %w", err)
	}

	portfolio := &models.Portfolio{URL: portfolioURL}

	portfolio.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		portfolio.Description = desc
	}

	pageText := strings.ToLower(doc.Text())
	for _, tech := range techKeywords {
		if strings.Contains(pageText, tech) {
			portfolio.Technologies = append(portfolio.Technologies, capitalize(tech))
		}
	}

	// Project sections, first five with a heading
	doc.Find("section, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if !projectSectionRe.MatchString(class) {
			return true
		}
		heading := sel.Find("h1, h2, h3, h4").First().Text()
		if heading == "" {
			return true
		}
		description := collapseWhitespace(sel.Text())
		if len(description) > 200 {
			description = description[:200]
		}
		portfolio.Projects = append(portfolio.Projects, models.PortfolioItem{
			Title:       strings.TrimSpace(heading),
			Description: description,
		})
		return len(portfolio.Projects) < 5
	})

	// Contact info: first email plus social links
	contact := map[string]any{}
	if email := emailRe.FindString(pageText); email != "" {
		contact["email"] = email
	}
	socialLinks := map[string]string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		switch {
		case strings.Contains(strings.ToLower(href), "linkedin.com"):
			socialLinks["linkedin"] = href
		case strings.Contains(strings.ToLower(href), "github.com"):
			socialLinks["github"] = href
		case strings.Contains(strings.ToLower(href), "twitter.com"):
			socialLinks["twitter"] = href
		}
	})
	if len(socialLinks) > 0 {
		contact["social_links"] = socialLinks
	}
	portfolio.ContactInfo = contact

	// Meta tags worth keeping
	metaTags := map[string]string{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, _ := sel.Attr("content")
		if prop, ok := sel.Attr("property"); ok {
			metaTags[prop] = content
		} else if name, ok := sel.Attr("name"); ok {
			metaTags[name] = content
		}
	})
	portfolio.MetaTags = metaTags

	log.Printf("[Scraper] Portfolio scraped successfully: %s", portfolioURL)
	return portfolio, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
