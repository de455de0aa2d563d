package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	LogLevel        string

	// Reference data and model artifact locations.
	DataDir  string
	ModelDir string

	// Scoring behavior.
	PassThreshold    float64
	MaxMissingSkills int

	// Fuzzy matching thresholds (fuzzywuzzy ratio, 0-100).
	FuzzyThreshold        int
	FuzzyPartialThreshold int
	FuzzyTokenThreshold   int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                  getEnv("PORT", "8080"),
		CORSAllowOrigin:       splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:                   normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		DataDir:               getEnv("DATA_DIR", "./data"),
		ModelDir:              getEnv("MODEL_DIR", "./data/models"),
		PassThreshold:         getEnvFloat("PASS_THRESHOLD", 0.5),
		MaxMissingSkills:      getEnvInt("MAX_MISSING_SKILLS", 15),
		FuzzyThreshold:        getEnvInt("FUZZY_THRESHOLD", 70),
		FuzzyPartialThreshold: getEnvInt("FUZZY_PARTIAL_THRESHOLD", 55),
		FuzzyTokenThreshold:   getEnvInt("FUZZY_TOKEN_THRESHOLD", 80),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
