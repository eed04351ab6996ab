// Package config provides centralized default values for the landing page
// service. Values are read once from the environment, with an optional .env
// file supplying anything the environment does not set.
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	CORSAllowOrigins   string
	PublicBaseURL      string

	// Storage
	DatabaseURL       string
	DatabaseAuthToken string
	SQLitePath        string

	// Database Pool
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	DBConnectMaxElapsed      time.Duration
	SlowQueryThreshold       time.Duration

	// Uploads
	UploadBackend   string
	MediaDir        string
	MediaBaseURL    string
	UploadMaxBytes  int
	UploadTimeout   time.Duration
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKeyID   string
	S3SecretKey     string
	S3PublicBaseURL string

	// Caching
	CacheBackend     string
	RedisURL         string
	ContentCacheTTL  time.Duration
	RenderCacheTTL   time.Duration
	EditorSessionTTL time.Duration

	// Auth
	JWTSecret         string
	JWTTTL            time.Duration
	AdminEmail        string
	AdminPasswordHash string

	// Email
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	// Scheduling and limits
	ExpiryCheckInterval  time.Duration
	InquiryRatePerMinute int
	PreviewPingInterval  time.Duration

	// Logging
	LogLevel string
	LogJSON  bool
	LogDir   string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	CORSAllowOrigins = getEnvString("CORS_ALLOW_ORIGINS", "*")
	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "")

	// Storage
	DatabaseURL = getEnvString("DATABASE_URL", "")
	DatabaseAuthToken = getEnvString("DATABASE_AUTH_TOKEN", "")
	SQLitePath = getEnvString("SQLITE_PATH", "landstack.db")

	// Database Pool
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	DBConnectMaxElapsed = getEnvDuration("DB_CONNECT_MAX_ELAPSED", 30*time.Second)
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 200*time.Millisecond)

	// Uploads
	UploadBackend = getEnvString("UPLOAD_BACKEND", "local")
	MediaDir = getEnvString("MEDIA_DIR", "media")
	MediaBaseURL = getEnvString("MEDIA_BASE_URL", "/media")
	UploadMaxBytes = getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)
	UploadTimeout = getEnvDuration("UPLOAD_TIMEOUT", 30*time.Second)
	S3Bucket = getEnvString("S3_BUCKET", "")
	S3Region = getEnvString("S3_REGION", "ap-southeast-1")
	S3Endpoint = getEnvString("S3_ENDPOINT", "")
	S3AccessKeyID = getEnvString("S3_ACCESS_KEY_ID", "")
	S3SecretKey = getEnvString("S3_SECRET_ACCESS_KEY", "")
	S3PublicBaseURL = getEnvString("S3_PUBLIC_BASE_URL", "")

	// Caching
	CacheBackend = getEnvString("CACHE_BACKEND", "memory")
	RedisURL = getEnvString("REDIS_URL", "redis://localhost:6379/0")
	ContentCacheTTL = getEnvDuration("CONTENT_CACHE_TTL", 10*time.Minute)
	RenderCacheTTL = getEnvDuration("RENDER_CACHE_TTL", 5*time.Minute)
	EditorSessionTTL = getEnvDuration("EDITOR_SESSION_TTL", 2*time.Hour)

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	JWTTTL = getEnvDuration("JWT_TTL", 12*time.Hour)
	AdminEmail = getEnvString("ADMIN_EMAIL", "admin@example.com")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")

	// Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@example.com")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Landing Pages")

	// Scheduling and limits
	ExpiryCheckInterval = getEnvDuration("EXPIRY_CHECK_INTERVAL", 15*time.Minute)
	InquiryRatePerMinute = getEnvInt("INQUIRY_RATE_PER_MINUTE", 6)
	PreviewPingInterval = getEnvDuration("PREVIEW_PING_INTERVAL", 30*time.Second)

	// Logging
	LogLevel = getEnvString("LOG_LEVEL", "info")
	LogJSON = getEnvBool("LOG_JSON", true)
	LogDir = getEnvString("LOG_DIR", "")
}
