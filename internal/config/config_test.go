package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.Expiry)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxUploadSize)
	assert.Contains(t, cfg.Upload.AllowedImageTypes, "image/jpeg")
	assert.Contains(t, cfg.Upload.AllowedImageTypes, "image/webp")
	assert.Equal(t, time.Second, cfg.Device.ConnectDelay)
	assert.Equal(t, 2*time.Second, cfg.Device.ScanDelay)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_EXPIRE_HOURS", "2")
	t.Setenv("DEVICE_CONNECT_DELAY", "250ms")
	t.Setenv("ALLOWED_IMAGE_TYPES", "image/png, image/jpeg")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.Session.Expiry)
	assert.Equal(t, 250*time.Millisecond, cfg.Device.ConnectDelay)
	assert.Equal(t, []string{"image/png", "image/jpeg"}, cfg.Upload.AllowedImageTypes)
}
