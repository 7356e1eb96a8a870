package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_URI", "PORT", "MONGO_URI", "MONGO_DB_NAME", "UPLOAD_DIR", "REDIS_URI", "LOG_LEVEL", "MAX_UPLOAD_MB", "MONGO_TIMEOUT_SECONDS", "LOG_TO_FILE", "SEED_SAMPLE_FORMS"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "form-builder", cfg.MongoDBName)
	assert.Equal(t, 10*time.Second, cfg.MongoTimeout)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, 10*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, "", cfg.RedisURI)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.ToFile)
	assert.False(t, cfg.SeedSampleData)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_URI", "")
	t.Setenv("PORT", "7000")
	t.Setenv("MONGO_DB_NAME", "forms-test")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("FORM_CACHE_TTL_SECONDS", "30")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("SEED_SAMPLE_FORMS", "1")

	cfg := FromEnv()
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "forms-test", cfg.MongoDBName)
	assert.Equal(t, 2*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.FormCacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.ToFile)
	assert.True(t, cfg.SeedSampleData)

	t.Setenv("APP_URI", "8888")
	assert.Equal(t, "8888", FromEnv().Port)
}

func TestFromEnvInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("MONGO_TIMEOUT_SECONDS", "-3")
	t.Setenv("LOG_TO_FILE", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 10*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, 10*time.Second, cfg.MongoTimeout)
	assert.False(t, cfg.Log.ToFile)
}
