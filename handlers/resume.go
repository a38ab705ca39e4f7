package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireagent/backend/analyzer"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/storage"
)

// ResumeHandler handles resume upload and file lifecycle requests
type ResumeHandler struct {
	analyzer *analyzer.Analyzer
	store    *storage.FileStore
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(a *analyzer.Analyzer, store *storage.FileStore) *ResumeHandler {
	return &ResumeHandler{analyzer: a, store: store}
}

// UploadResume saves an uploaded resume file and parses it
// @Summary Upload and parse a resume
// @Description Upload a resume file (PDF, DOCX, TXT), extract its text and parse it with AI
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Success 200 {object} models.UploadResumeResponse "Parsed resume with file ID"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 502 {object} models.ErrorResponse "AI parsing failed"
// @Router /upload-resume [post]
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, models.NewValidationError("resume file is required"))
		return
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		respondError(c, models.NewValidationError("failed to read uploaded file"))
		return
	}

	log.Printf("[ResumeHandler] Received resume file: %s (%d bytes)", header.Filename, buf.Len())

	fileID, err := h.store.Save(buf.Bytes(), header.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	resume, _, err := h.analyzer.ParseStoredResume(c.Request.Context(), fileID)
	if err != nil {
		// Do not keep files whose content could not be processed
		if cleanupErr := h.store.Cleanup(fileID); cleanupErr != nil {
			log.Printf("[ResumeHandler] Failed to clean up file %s: %v", fileID, cleanupErr)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResumeResponse{
		Success:    true,
		Message:    "Resume uploaded and parsed successfully",
		FileID:     fileID,
		ResumeData: resume,
	})
}

// CleanupFile deletes one uploaded file
// @Summary Delete an uploaded file
// @Description Delete a previously uploaded resume file by its ID
// @Tags Resume
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} models.CleanupResponse "File deleted"
// @Failure 404 {object} models.ErrorResponse "Unknown file ID"
// @Router /cleanup-file/{file_id} [delete]
func (h *ResumeHandler) CleanupFile(c *gin.Context) {
	fileID := c.Param("file_id")
	if err := h.store.Cleanup(fileID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CleanupResponse{
		Success: true,
		Message: "File cleaned up successfully",
	})
}

// BulkCleanup deletes uploads older than max_age_hours (default 24)
// @Summary Delete old uploaded files
// @Description Delete uploaded files older than the given age in hours
// @Tags Resume
// @Produce json
// @Param max_age_hours query int false "Maximum file age in hours" default(24)
// @Success 200 {object} models.BulkCleanupResponse "Cleanup result"
// @Router /bulk-cleanup [post]
func (h *ResumeHandler) BulkCleanup(c *gin.Context) {
	maxAgeHours := 24
	if raw := c.Query("max_age_hours"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			maxAgeHours = parsed
		}
	}

	deleted := h.store.CleanupOld(time.Duration(maxAgeHours) * time.Hour)
	c.JSON(http.StatusOK, models.BulkCleanupResponse{
		Success:      true,
		Message:      "Cleaned up " + strconv.Itoa(deleted) + " old files",
		DeletedCount: deleted,
	})
}
