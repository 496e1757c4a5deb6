package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lawlink/internal/flagx"
	"github.com/dmitrijs2005/lawlink/internal/timex"
)

// JsonConfig is the on-disk representation of Config. Intervals use
// timex.Duration so they can be written as "2s" or as nanoseconds.
// Pointer fields distinguish "absent" from "false".
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	PollInterval   timex.Duration `json:"poll_interval"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	KeyPath        string         `json:"key_path"`
	LogFile        string         `json:"log_file"`
	LogFormat      string         `json:"log_format"`
	LogLevel       string         `json:"log_level"`
	RateLimit      float64        `json:"rate_limit"`
	WebSocket      *bool          `json:"websocket"`
	UploadMode     string         `json:"upload_mode"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with the values present in the file named by -c or
// -config. Absent or zero values leave cfg untouched. Read and decode errors
// panic; a broken config file is a startup error.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	if jc.PollInterval.Duration > 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.KeyPath, jc.KeyPath)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RateLimit > 0 {
		cfg.RateLimit = jc.RateLimit
	}
	if jc.WebSocket != nil {
		cfg.WebSocket = *jc.WebSocket
	}
	setString(&cfg.UploadMode, jc.UploadMode)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
