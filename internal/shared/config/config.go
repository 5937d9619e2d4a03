package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Version store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string
	VersionStore    string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisKeyPrefix  string
	TaxonomyFile    string
	RateLimitRPS    float64
	RateLimitBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience. Existing
	// environment variables win.
	_ = godotenv.Load(existing(".env", "cmd/.env")...)

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		VersionStore:    normalizeStore(getEnv("VERSION_STORE", StoreMemory)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisKeyPrefix:  getEnv("REDIS_KEY_PREFIX", "resume:versions:"),
		TaxonomyFile:    os.Getenv("TAXONOMY_FILE"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// IsDevLike reports whether store failures may fall back to memory.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func existing(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
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

// normalizeStore maps aliases to store names. Unknown values are returned
// lowercased so bootstrap can reject them instead of silently using memory.
func normalizeStore(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "postgres", "pg":
		return StorePostgres
	case "redis":
		return StoreRedis
	case "", "memory", "mem":
		return StoreMemory
	default:
		return name
	}
}
