package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	LogLevel      string
	DBUrl         string
	FrontendURL   string
	PublicBaseURL string
	CookieSecure  bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Workspace persistence
	LocalStore         string // file | redis | memory
	LocalStorePath     string
	SessionStore       string // redis | memory
	SessionTTL         time.Duration
	AutosaveIdle       time.Duration
	RemoteWriteTimeout time.Duration
	WorkspaceIdleTTL   time.Duration
	// Identity
	StateSecret        string
	SupabaseUrl        string
	SupabaseJWTSecret  string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	// Share storage
	StorageType      string
	StorageLocalPath string
	AWSS3Bucket      string
	AWSRegion        string
	AWSAccessKey     string
	AWSSecretKey     string
	// Suggestions
	GeminiAPIKey string
	GeminiModel  string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAuthThreshold   int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		LocalStore:         strings.ToLower(getEnv("LOCAL_STORE", "file")),
		LocalStorePath:     getEnv("LOCAL_STORE_PATH", "./data/snapshots"),
		SessionStore:       strings.ToLower(getEnv("SESSION_STORE", "memory")),
		SessionTTL:         getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		AutosaveIdle:       time.Duration(getEnvInt("AUTOSAVE_IDLE_MS", 2000)) * time.Millisecond,
		RemoteWriteTimeout: getEnvDuration("REMOTE_WRITE_TIMEOUT", 10*time.Second),
		WorkspaceIdleTTL:   getEnvDuration("WORKSPACE_IDLE_TTL", 30*time.Minute),

		StateSecret: getEnv("STATE_SECRET", ""),
		// Trailing slash would double up in the JWKS path
		SupabaseUrl:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret:  getEnv("SUPABASE_JWT_SECRET", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/v1/auth/google/callback"),

		StorageType:      strings.ToLower(getEnv("STORAGE_TYPE", "local")),
		StorageLocalPath: getEnv("STORAGE_LOCAL_PATH", "./data/storage"),
		AWSS3Bucket:      getEnv("AWS_S3_BUCKET", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Signed-in users will be served from memory.")
	}
	if cfg.RedisURL == "" && (cfg.LocalStore == "redis" || cfg.SessionStore == "redis") {
		log.Println("WARNING: REDIS_URL not configured. Redis-backed stores fall back to memory.")
	}
	if cfg.StateSecret == "" {
		log.Println("WARNING: STATE_SECRET not configured. Google sign-in is disabled.")
	}

	return cfg, nil
}

// RateLimitWindow is the shared window for every limiter.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("90s", "7h") or plain seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
