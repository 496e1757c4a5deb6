package config

import "time"

// Upload modes.
const (
	UploadModeMultipart = "multipart"
	UploadModeS3        = "s3"
)

// Config holds runtime settings for the LawLink CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the marketplace backend.
//   - PollInterval: chat refresh interval while a conversation is open.
//   - RequestTimeout: per-request timeout of the HTTP gateway.
//   - DatabasePath / KeyPath: local SQLite file and the device key sealing the session token.
//   - LogFile / LogFormat / LogLevel: where and how diagnostics are written.
//   - RateLimit: outbound requests per second (0 disables throttling).
//   - WebSocket: use the push channel for chat instead of polling.
//   - UploadMode and S3*: document upload transport.
type Config struct {
	ServerBaseURL  string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	DatabasePath   string
	KeyPath        string
	LogFile        string
	LogFormat      string
	LogLevel       string
	RateLimit      float64
	WebSocket      bool
	UploadMode     string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.PollInterval = 2 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "lawlink.db"
	c.KeyPath = "lawlink.key"
	c.LogFile = "lawlink.log"
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.RateLimit = 0
	c.WebSocket = false
	c.UploadMode = UploadModeMultipart
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config from defaults, then overlays the optional JSON
// file, the environment (including a .env file) and finally command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
