package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":       "www.example:9000",
		"admin_password_hash": "json_hash",
		"jwt_secret":          "json_secret",
		"token_ttl":           "2h",
		"allowed_origins":     []string{"https://a.example"},
		"content_max_size":    "100KB",
		"media_max_size":      "2MB",
		"storage_backend":     "postgres",
		"database_dsn":        "dsn",
		"s3_root_user":        "user",
		"s3_root_password":    "password",
		"s3_bucket":           "bucket",
		"s3_region":           "region",
		"s3_base_endpoint":    "base_endpoint",
		"track_api_url":       "https://track.example",
		"track_api_key":       "tk",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "json_hash", cfg.AdminPasswordHash)
		assert.Equal(t, "json_secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.Equal(t, []string{"https://a.example"}, cfg.AllowedOrigins)
		assert.Equal(t, "100KB", cfg.ContentMaxSize)
		assert.Equal(t, "2MB", cfg.MediaMaxSize)
		assert.Equal(t, "postgres", cfg.StorageBackend)
		assert.Equal(t, "dsn", cfg.DatabaseDSN)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "https://track.example", cfg.TrackAPIURL)
		assert.Equal(t, "tk", cfg.TrackAPIKey)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddr:   "defaults:1234",
			JWTSecret:      "key",
			TokenTTL:       time.Hour,
			StorageBackend: "memory",
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "key", cfg.JWTSecret)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
		assert.Equal(t, "memory", cfg.StorageBackend)
	})

	t.Run("partial file keeps other fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"jwt_secret": "only_this",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{EndpointAddr: "keep:1", TokenTTL: time.Hour}
		parseJson(cfg)

		assert.Equal(t, "only_this", cfg.JWTSecret)
		assert.Equal(t, "keep:1", cfg.EndpointAddr)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
