// ABOUTME: Tests for environment-driven configuration
// ABOUTME: Covers defaults, overrides, and derived paths
package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, filepath.Join(xdg.DataHome, "closet"), cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DeviceID)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLOSET_API_URL", "https://closet.example.com/api")
	t.Setenv("CLOSET_DATA_DIR", "/tmp/closet-test")
	t.Setenv("CLOSET_HTTP_TIMEOUT", "5s")
	t.Setenv("CLOSET_DEVICE_ID", "01HYDEVICE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://closet.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/closet-test", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "01HYDEVICE", cfg.DeviceID)

	assert.Equal(t, filepath.Join("/tmp/closet-test", "closet.db"), cfg.DatabasePath())
	assert.Equal(t, filepath.Join("/tmp/closet-test", "device.json"), cfg.DevicePath())
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("CLOSET_HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
