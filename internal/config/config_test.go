package config_test

import (
	"testing"

	"store_system/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Make sure inherited environment values do not leak into the test.
	for _, key := range []string{
		"APP_PORT", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"JWT_SECRET", "REDIS_ADDR", "REDIS_DB", "UPLOAD_DIR", "MAX_UPLOAD_MB",
		"ALLOWED_IMAGE_EXT", "S3_BUCKET", "FEATURED_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := config.LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "static/uploads", cfg.UploadDir)
	assert.EqualValues(t, 16, cfg.MaxUploadMB)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif"}, cfg.AllowedImageExt)
	assert.Equal(t, 4, cfg.FeaturedLimit)
	assert.Empty(t, cfg.S3Bucket)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("MAX_UPLOAD_MB", "8")
	t.Setenv("ALLOWED_IMAGE_EXT", "png,webp")
	t.Setenv("FEATURED_LIMIT", "6")
	t.Setenv("IS_PROD", "true")

	cfg := config.LoadConfig()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.EqualValues(t, 8, cfg.MaxUploadMB)
	assert.Equal(t, []string{"png", "webp"}, cfg.AllowedImageExt)
	assert.Equal(t, 6, cfg.FeaturedLimit)
	assert.True(t, cfg.IsProd)
}
