package config

import (
	"os"
	"strconv"
	"time"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// MinIOConfig holds object storage settings for property media.
// When PublicBaseURL is empty, media URLs are presigned for PresignExpiry.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
	PresignExpiry time.Duration
}

// Enabled reports whether object storage is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// SearchConfig holds the fallbacks of GET /properties.
type SearchConfig struct {
	DefaultRadiusKm float64
	DefaultPageSize int
	MaxPageSize     int
}

// WhatsAppConfig holds the Meta Cloud API webhook and messaging settings.
type WhatsAppConfig struct {
	VerifyToken   string
	APIBase       string
	PhoneNumberID string
	AccessToken   string
	Timeout       time.Duration
}

// LoggerConfig selects the zap preset and an optional rotating log file.
type LoggerConfig struct {
	Mode       string // production or development
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	StoreDriver string
	SeedFile    string
	Database    DatabaseConfig
	Mongo       MongoConfig
	MinIO       MinIOConfig
	Search      SearchConfig
	WhatsApp    WhatsAppConfig
	Logger      LoggerConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", StorePostgres),
		SeedFile:    getEnv("MEMORY_SEED_FILE", ""),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "broperty"),
			Timeout:  time.Duration(getEnvInt("MONGO_TIMEOUT_SEC", 10)) * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_BASE_URL", ""),
			PresignExpiry: time.Duration(getEnvInt("MINIO_PRESIGN_EXPIRY_HOURS", 24*7)) * time.Hour,
		},
		Search: SearchConfig{
			DefaultRadiusKm: getEnvFloat("SEARCH_DEFAULT_RADIUS_KM", 10),
			DefaultPageSize: getEnvInt("SEARCH_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getEnvInt("SEARCH_MAX_PAGE_SIZE", 100),
		},
		WhatsApp: WhatsAppConfig{
			VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
			APIBase:       getEnv("WHATSAPP_API_BASE", "https://graph.facebook.com/v17.0"),
			PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			Timeout:       time.Duration(getEnvInt("WHATSAPP_TIMEOUT_SEC", 10)) * time.Second,
		},
		Logger: LoggerConfig{
			Mode:       getEnv("LOG_MODE", "production"),
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 64),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
