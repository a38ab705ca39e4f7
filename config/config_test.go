package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values fall back to defaults
	for _, key := range []string{"PORT", "GEMINI_MODEL", "GEMINI_TEMPERATURE", "MAX_FILE_SIZE", "UPLOAD_DIR", "SCRAPING_TIMEOUT", "MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.0-flash", cfg.GeminiModel)
	}
	if cfg.GeminiTemperature != 0.1 {
		t.Errorf("GeminiTemperature = %v, want 0.1", cfg.GeminiTemperature)
	}
	if cfg.MaxFileSize != 10485760 {
		t.Errorf("MaxFileSize = %d, want 10485760", cfg.MaxFileSize)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir = %q, want ./uploads", cfg.UploadDir)
	}
	if cfg.ScrapingTimeoutSeconds != 30 {
		t.Errorf("ScrapingTimeoutSeconds = %d, want 30", cfg.ScrapingTimeoutSeconds)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("MAX_FILE_SIZE", "1024")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.GeminiTemperature != 0.7 {
		t.Errorf("GeminiTemperature = %v, want 0.7", cfg.GeminiTemperature)
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("MaxFileSize = %d, want 1024", cfg.MaxFileSize)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")
	t.Setenv("MAX_RETRIES", "many")

	cfg := Load()
	if cfg.Debug {
		t.Error("Debug = true, want default false")
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3", cfg.MaxRetries)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing api key", func(c *Config) { c.GeminiAPIKey = "" }, true},
		{"whitespace api key", func(c *Config) { c.GeminiAPIKey = "   " }, true},
		{"zero max file size", func(c *Config) { c.MaxFileSize = 0 }, true},
		{"empty extension list", func(c *Config) { c.AllowedExtensions = " , " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				GeminiAPIKey:      "test-key",
				MaxFileSize:       1024,
				AllowedExtensions: "pdf,docx,txt",
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllowedExtensionsList(t *testing.T) {
	cfg := &Config{AllowedExtensions: "PDF, docx ,txt,"}
	got := cfg.AllowedExtensionsList()
	want := []string{"pdf", "docx", "txt"}
	if len(got) != len(want) {
		t.Fatalf("AllowedExtensionsList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllowedExtensionsList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsFileAllowed(t *testing.T) {
	cfg := &Config{AllowedExtensions: "pdf,docx,txt"}
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"notes.txt", true},
		{"script.exe", false},
		{"archive.tar.gz", false},
		{"noextension", false},
		{"trailing.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := cfg.IsFileAllowed(tt.filename); got != tt.want {
			t.Errorf("IsFileAllowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
