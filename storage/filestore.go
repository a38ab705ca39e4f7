package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireagent/backend/config"
	"github.com/hireagent/backend/models"
	"github.com/hireagent/backend/utils"
)

// FileStore manages uploaded resume files in the configured upload directory.
// Files are stored as <uuid>.<ext>; the uuid is the only handle later stages use.
type FileStore struct {
	dir               string
	maxFileSize       int64
	allowedExtensions []string
}

// dangerousExtensions are rejected regardless of the configured allow-list
var dangerousExtensions = []string{".exe", ".bat", ".cmd", ".scr", ".com", ".pif"}

// NewFileStore creates a file store, creating the upload directory if needed
func NewFileStore(cfg *config.Config) (*FileStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{
		dir:               cfg.UploadDir,
		maxFileSize:       cfg.MaxFileSize,
		allowedExtensions: cfg.AllowedExtensionsList(),
	}, nil
}

// Validate checks an upload for size, extension, and filename safety
func (s *FileStore) Validate(size int64, filename string) error {
	if size > s.maxFileSize {
		return models.NewValidationError("file size exceeds maximum limit of %d bytes", s.maxFileSize)
	}
	if filename == "" {
		return models.NewValidationError("no filename provided")
	}

	lower := strings.ToLower(filename)
	for _, ext := range dangerousExtensions {
		if strings.HasSuffix(lower, ext) {
			return models.NewValidationError("potentially dangerous file type detected")
		}
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return models.NewValidationError("invalid filename characters detected")
	}

	ext := extensionOf(filename)
	for _, allowed := range s.allowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return models.NewValidationError("file type not allowed, supported types: %s", strings.Join(s.allowedExtensions, ", "))
}

// Save validates and persists an uploaded file, returning its generated ID
func (s *FileStore) Save(data []byte, filename string) (string, error) {
	if err := s.Validate(int64(len(data)), filename); err != nil {
		return "", err
	}

	fileID := uuid.New().String()
	secureFilename := fileID + "." + extensionOf(filename)
	path := filepath.Join(s.dir, secureFilename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	log.Printf("[FileStore] Saved file %s as %s", filename, secureFilename)
	return fileID, nil
}

// ExtractText reads a stored file and extracts its plain text content
func (s *FileStore) ExtractText(fileID string) (string, error) {
	path, err := s.filePath(fileID)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := utils.ExtractText(data, filepath.Ext(path))
	if err != nil {
		return "", models.NewValidationError("failed to extract text: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", models.NewValidationError("no text content found in file")
	}
	return text, nil
}

// Cleanup deletes a stored file by its ID
func (s *FileStore) Cleanup(fileID string) error {
	path, err := s.filePath(fileID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	log.Printf("[FileStore] Cleaned up file %s", fileID)
	return nil
}

// CleanupOld deletes files older than maxAge, returning the number removed
func (s *FileStore) CleanupOld(maxAge time.Duration) int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("[FileStore] Failed to list upload directory: %v", err)
		return 0
	}

	deleted := 0
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				log.Printf("[FileStore] Failed to delete old file %s: %v", entry.Name(), err)
				continue
			}
			deleted++
			log.Printf("[FileStore] Cleaned up old file %s", entry.Name())
		}
	}
	return deleted
}

// filePath resolves a file ID to its on-disk path
func (s *FileStore) filePath(fileID string) (string, error) {
	// Reject IDs that could escape the upload directory
	if fileID == "" || strings.Contains(fileID, "..") || strings.ContainsAny(fileID, "/\\") {
		return "", models.NewNotFoundError("file not found: %s", fileID)
	}

	matches, err := filepath.Glob(filepath.Join(s.dir, fileID+".*"))
	if err != nil || len(matches) == 0 {
		return "", models.NewNotFoundError("file not found: %s", fileID)
	}
	return matches[0], nil
}

func extensionOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
