package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/scraper"
)

// EnrichHandler handles profile enrichment requests
type EnrichHandler struct {
	scraper *scraper.Service
}

// NewEnrichHandler creates a new enrichment handler
func NewEnrichHandler(s *scraper.Service) *EnrichHandler {
	return &EnrichHandler{scraper: s}
}

// EnrichProfile fetches social profiles for the supplied URLs. Individual
// fetch failures degrade to absent sub-records; the call itself only fails
// on a malformed request.
// @Summary Enrich a candidate profile
// @Description Fetch LinkedIn, GitHub and portfolio data for the supplied URLs, best-effort
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.EnrichProfileRequest true "Profile URLs"
// @Success 200 {object} models.EnrichProfileResponse "Enrichment bundle"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /enrich-profile [post]
func (h *EnrichHandler) EnrichProfile(c *gin.Context) {
	var req models.EnrichProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewValidationError("invalid request body"))
		return
	}

	enrichment := h.scraper.EnrichProfile(c.Request.Context(), req.LinkedInURL, req.GitHubURL, req.PortfolioURL)

	c.JSON(http.StatusOK, models.EnrichProfileResponse{
		Success:    true,
		Message:    "Profile enrichment completed",
		Enrichment: enrichment,
	})
}
