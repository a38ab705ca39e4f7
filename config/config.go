package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Gemini
	GeminiAPIKey          string
	GeminiModel           string
	GeminiTemperature     float64
	GeminiMaxOutputTokens int

	// File uploads
	UploadDir         string
	MaxFileSize       int64
	AllowedExtensions string

	// CORS
	CORSOrigins string

	// Web scraping
	ScrapingTimeoutSeconds int
	MaxRetries             int
	GitHubToken            string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTemperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.1),
		GeminiMaxOutputTokens: getEnvInt("GEMINI_MAX_OUTPUT_TOKENS", 2048),

		// File uploads
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		MaxFileSize:       int64(getEnvInt("MAX_FILE_SIZE", 10485760)), // 10MB
		AllowedExtensions: getEnv("ALLOWED_EXTENSIONS", "pdf,docx,txt"),

		// CORS
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),

		// Web scraping
		ScrapingTimeoutSeconds: getEnvInt("SCRAPING_TIMEOUT", 30),
		MaxRetries:             getEnvInt("MAX_RETRIES", 3),
		GitHubToken:            getEnv("GITHUB_TOKEN", ""),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required for AI analysis"}
	}
	if c.MaxFileSize <= 0 {
		return &ConfigError{Field: "MAX_FILE_SIZE", Message: "MAX_FILE_SIZE must be positive"}
	}
	if len(c.AllowedExtensionsList()) == 0 {
		return &ConfigError{Field: "ALLOWED_EXTENSIONS", Message: "ALLOWED_EXTENSIONS must list at least one extension"}
	}
	return nil
}

// AllowedExtensionsList returns the allowed file extensions, lowercased
func (c *Config) AllowedExtensionsList() []string {
	parts := strings.Split(c.AllowedExtensions, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}

// CORSOriginsList returns the configured CORS allow-list
func (c *Config) CORSOriginsList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// IsFileAllowed checks if the filename carries an allowed extension
func (c *Config) IsFileAllowed(filename string) bool {
	if filename == "" {
		return false
	}
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, allowed := range c.AllowedExtensionsList() {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
