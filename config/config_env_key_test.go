package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseURL": "http://localhost:8080",
		},
		"geocoding": map[string]any{
			"fallbackRatePerSecond": 1,
		},
		"persistence": map[string]any{
			"bucketURL": "mem://",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseURL"},
		{envKey: "GEOCODING_FALLBACKRATEPERSECOND", want: "geocoding.fallbackRatePerSecond"},
		{envKey: "PERSISTENCE_BUCKETURL", want: "persistence.bucketURL"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte("api:\n  baseURL: http://yaml.local\n  timeout: 5s\ngeolocation:\n  sampleWindow: 8s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("API_BASEURL", "http://env.local")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.API)
	assert.Equal(t, "http://env.local", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8*time.Second, cfg.Geolocation.SampleWindow)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, 8*time.Second, cfg.Geolocation.SampleWindow)
	assert.Equal(t, 30*time.Second, cfg.Geolocation.Timeout)
	assert.True(t, cfg.Geolocation.HighAccuracy)
	assert.Equal(t, 1.0, cfg.Geocoding.FallbackRatePerSecond)
	assert.Equal(t, "mem://", cfg.Persistence.BucketURL)
	assert.Equal(t, 10, cfg.Persistence.RecentSearchLimit)
}
