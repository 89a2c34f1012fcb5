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
			"baseUrl": "",
		},
		"session": map[string]any{
			"cookieName": "access_token",
			"flashTtl":   "5m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"flash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_FLASHTTL", want: "session.flashTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_FLASH", want: "secretKey.flash"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
api:
  baseUrl: http://localhost:8000/api
  timeout: 3s
profile:
  requiredFields: [phone, address]
secretKey:
  flash: from-yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SECRETKEY_FLASH", "from-env")
	t.Setenv("API_TIMEOUT", "7s")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.API.Timeout)
	assert.Equal(t, "from-env", cfg.SecretKey.Flash)
	assert.Equal(t, []string{"phone", "address"}, cfg.Profile.RequiredFields)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, "access_token", cfg.Session.CookieName)
	assert.Equal(t, defaultFlashTTL, cfg.Session.FlashTTL)
	assert.Equal(t, defaultOrderPageSize, cfg.Orders.PageSize)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.NotNil(t, cfg.PubSub)
}
