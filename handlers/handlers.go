package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/models"
)

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError writes the standard error envelope for a pipeline failure
func respondError(c *gin.Context, err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Code), models.ErrorResponse{
			Success:   false,
			Message:   appErr.Message,
			ErrorCode: string(appErr.Code),
		})
		return
	}

	log.Printf("[Handlers] Unclassified error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "internal server error",
	})
}

// statusFor maps the error taxonomy onto HTTP status codes
func statusFor(code models.ErrorCode) int {
	switch code {
	case models.ErrValidation:
		return http.StatusBadRequest
	case models.ErrNotFound:
		return http.StatusNotFound
	case models.ErrFetch, models.ErrUpstream, models.ErrParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
