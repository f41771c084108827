package config

import (
	"encoding/json"
	"os"
	"time"

	"livecontent/internal/flagx"
	"livecontent/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the token lifetime either as a string
// like "8h" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	EndpointAddr      string         `json:"endpoint_addr"`
	AdminPasswordHash string         `json:"admin_password_hash"`
	JWTSecret         string         `json:"jwt_secret"`
	TokenTTL          timex.Duration `json:"token_ttl"`
	AllowedOrigins    []string       `json:"allowed_origins"`
	ContentMaxSize    string         `json:"content_max_size"`
	MediaMaxSize      string         `json:"media_max_size"`
	StorageBackend    string         `json:"storage_backend"`
	DatabaseDSN       string         `json:"database_dsn"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	TrackAPIURL       string         `json:"track_api_url"`
	TrackAPIKey       string         `json:"track_api_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config command-line flags via
// flagx.JsonConfigFlags(); if neither is set, no JSON is loaded. Read or
// unmarshal errors panic, since a named config file that cannot be used is
// a deployment mistake.
//
// Only fields present in the file override the current values, so the JSON
// overlay composes with defaults and environment values.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.AdminPasswordHash != "" {
		config.AdminPasswordHash = c.AdminPasswordHash
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = time.Duration(c.TokenTTL.Duration)
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.ContentMaxSize != "" {
		config.ContentMaxSize = c.ContentMaxSize
	}
	if c.MediaMaxSize != "" {
		config.MediaMaxSize = c.MediaMaxSize
	}
	if c.StorageBackend != "" {
		config.StorageBackend = c.StorageBackend
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.TrackAPIURL != "" {
		config.TrackAPIURL = c.TrackAPIURL
	}
	if c.TrackAPIKey != "" {
		config.TrackAPIKey = c.TrackAPIKey
	}
}
