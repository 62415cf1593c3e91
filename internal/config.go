package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Claims API (the downstream data service every view is built from)
	ClaimsAPIBaseURL string
	ClaimsAPITimeout time.Duration

	// Display conventions. These are injected rather than hardcoded so a
	// locale change never touches aggregation logic.
	CurrencySymbol string
	DateFormat     string

	// Submission periods are offered from this month (inclusive) up to,
	// but excluding, the current calendar month. Format MMM-YYYY.
	MinimumSubmissionPeriod string

	// Pagination defaults for search results and message listings
	DefaultPageSize int

	// Upload constraints
	MaxUploadBytes       int64
	AllowedUploadFormats []string

	// Offices the deployment acts for. Authentication is handled upstream
	// of this service; every Claims API call is scoped to these accounts.
	AuthorizedOffices []string
	ProviderUserID    string

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		ClaimsAPIBaseURL: getEnv("CLAIMS_API_BASE_URL", "http://localhost:8085/api/v0"),
		ClaimsAPITimeout: getEnvDuration("CLAIMS_API_TIMEOUT", 30*time.Second),

		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "£"),
		DateFormat:     getEnv("DATE_FORMAT", "2 January 2006"),

		MinimumSubmissionPeriod: getEnv("MINIMUM_SUBMISSION_PERIOD", "JAN-2025"),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	cfg.ProviderUserID = getEnv("PROVIDER_USER_ID", "")

	// Parse authorized offices from comma-separated environment variable
	officesStr := getEnv("AUTHORIZED_OFFICES", "")
	for _, office := range strings.Split(officesStr, ",") {
		trimmed := strings.TrimSpace(office)
		if trimmed != "" {
			cfg.AuthorizedOffices = append(cfg.AuthorizedOffices, trimmed)
		}
	}

	// Parse allowed upload formats from comma-separated environment variable
	formatsStr := getEnv("ALLOWED_UPLOAD_FORMATS", "csv,xml")
	for _, format := range strings.Split(formatsStr, ",") {
		trimmed := strings.TrimSpace(strings.ToLower(format))
		if trimmed != "" {
			cfg.AllowedUploadFormats = append(cfg.AllowedUploadFormats, trimmed)
		}
	}

	if cfg.ClaimsAPIBaseURL == "" {
		return nil, fmt.Errorf("CLAIMS_API_BASE_URL is required")
	}

	if len(cfg.AuthorizedOffices) == 0 {
		return nil, fmt.Errorf("AUTHORIZED_OFFICES is required")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got: %d", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
