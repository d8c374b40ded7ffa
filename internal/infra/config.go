package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                   string
	Port                     string
	ProductName              string
	GenAITransport           string
	GeminiAPIKey             string
	GeminiModel              string
	GeminiBaseURL            string
	GenAIHTTPTimeout         time.Duration
	GenerationCancelSiblings bool
	MaxUploadBytes           int64
	FetchTimeout             time.Duration
	HTTPReadTimeout          time.Duration
	HTTPWriteTimeout         time.Duration
	HTTPIdleTimeout          time.Duration
	ShutdownTimeout          time.Duration
	RateLimitPerMin          int
	CORSAllowedOrigins       []string
}

const (
	TransportREST = "rest"
	TransportSDK  = "sdk"
)

const defaultShutdownTimeout = 30 * time.Second

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                   getEnv("APP_ENV", "development"),
		Port:                     getEnv("PORT", "8080"),
		ProductName:              getEnv("PRODUCT_NAME", "virtual-stylist"),
		GenAITransport:           strings.ToLower(getEnv("GENAI_TRANSPORT", TransportREST)),
		GeminiAPIKey:             os.Getenv("GEMINI_API_KEY"),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),
		GeminiBaseURL:            getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GenAIHTTPTimeout:         time.Second * time.Duration(getEnvInt("GENAI_HTTP_TIMEOUT_SECONDS", 120)),
		GenerationCancelSiblings: getEnvBool("GENERATION_CANCEL_SIBLINGS", false),
		MaxUploadBytes:           int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
		FetchTimeout:             time.Second * time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 30)),
		HTTPReadTimeout:          time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:         time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:          time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ShutdownTimeout:          time.Second * time.Duration(getEnvInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 30)),
		RateLimitPerMin:          getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CORSAllowedOrigins:       splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	switch cfg.GenAITransport {
	case TransportREST:
	case TransportSDK:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when GENAI_TRANSPORT=sdk")
		}
	default:
		return nil, fmt.Errorf("GENAI_TRANSPORT must be %q or %q, got %q", TransportREST, TransportSDK, cfg.GenAITransport)
	}

	// Shutdown waits for in-flight generation calls; never let it expire at once.
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
