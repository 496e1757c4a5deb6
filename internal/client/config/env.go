package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvServerBaseURL  = "LAWLINK_SERVER_URL"
	EnvPollInterval   = "LAWLINK_POLL_INTERVAL"
	EnvRequestTimeout = "LAWLINK_REQUEST_TIMEOUT"
	EnvDatabasePath   = "LAWLINK_DATABASE"
	EnvLogLevel       = "LAWLINK_LOG_LEVEL"
	EnvWebSocket      = "LAWLINK_WEBSOCKET"
	EnvUploadMode     = "LAWLINK_UPLOAD_MODE"
	EnvS3Bucket       = "LAWLINK_S3_BUCKET"
	EnvS3Region       = "LAWLINK_S3_REGION"
	EnvS3BaseEndpoint = "LAWLINK_S3_ENDPOINT"
	EnvS3AccessKey    = "LAWLINK_S3_ACCESS_KEY"
	EnvS3SecretKey    = "LAWLINK_S3_SECRET_KEY"
)

// parseEnv overlays cfg with LAWLINK_* variables. A .env file in the working
// directory is loaded first; variables already set in the process win over it.
// Malformed durations and booleans are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	lookupString(EnvServerBaseURL, &cfg.ServerBaseURL)
	lookupDuration(EnvPollInterval, &cfg.PollInterval)
	lookupDuration(EnvRequestTimeout, &cfg.RequestTimeout)
	lookupString(EnvDatabasePath, &cfg.DatabasePath)
	lookupString(EnvLogLevel, &cfg.LogLevel)
	lookupString(EnvUploadMode, &cfg.UploadMode)
	lookupString(EnvS3Bucket, &cfg.S3Bucket)
	lookupString(EnvS3Region, &cfg.S3Region)
	lookupString(EnvS3BaseEndpoint, &cfg.S3BaseEndpoint)
	lookupString(EnvS3AccessKey, &cfg.S3AccessKey)
	lookupString(EnvS3SecretKey, &cfg.S3SecretKey)

	if v, ok := os.LookupEnv(EnvWebSocket); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WebSocket = b
		}
	}
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		*dst = d
	}
}
