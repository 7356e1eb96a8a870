package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	MongoTimeout   time.Duration
	UploadDir      string
	MaxUploadBytes int
	AllowedOrigins string
	RedisURI       string
	FormCacheTTL   time.Duration
	SeedSampleData bool
	Log            LoggerConfig
}

type LoggerConfig struct {
	Level      string
	ToFile     bool
	Filename   string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// Load อ่าน .env (ถ้ามี) แล้วอ่านค่าจาก environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	port := getEnv("APP_URI", "")
	if port == "" {
		port = getEnv("PORT", "5000")
	}

	return Config{
		Port:           port,
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "form-builder"),
		MongoTimeout:   time.Duration(getEnvInt("MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_MB", 10) * 1024 * 1024,
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		RedisURI:       getEnv("REDIS_URI", ""),
		FormCacheTTL:   time.Duration(getEnvInt("FORM_CACHE_TTL_SECONDS", 600)) * time.Second,
		SeedSampleData: getEnvBool("SEED_SAMPLE_FORMS", false),
		Log: LoggerConfig{
			Level:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
			ToFile:     getEnvBool("LOG_TO_FILE", false),
			Filename:   getEnv("LOG_FILENAME", "logs/server.log"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid integer in environment, using default", slog.String("key", key), slog.String("value", raw))
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", slog.String("key", key), slog.String("value", raw))
		return fallback
	}
	return v
}
