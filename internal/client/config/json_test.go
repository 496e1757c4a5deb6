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
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"server_base_url":  "https://api.example",
		"poll_interval":    "5s",
		"request_timeout":  3000000000,
		"websocket":        true,
		"log_format":       "zap",
		"upload_mode":      "s3",
		"s3_bucket":        "documents",
		"s3_base_endpoint": "http://127.0.0.1:9000/",
	})

	t.Run("loads from -config", func(t *testing.T) {
		os.Args = []string{"lawlink", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://api.example", cfg.ServerBaseURL)
		assert.Equal(t, 5*time.Second, cfg.PollInterval)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.WebSocket)
		assert.Equal(t, "zap", cfg.LogFormat)
		assert.Equal(t, "s3", cfg.UploadMode)
		assert.Equal(t, "documents", cfg.S3Bucket)
		assert.Equal(t, "lawlink.db", cfg.DatabasePath, "absent keys keep defaults")
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"lawlink"}

		cfg := &Config{ServerBaseURL: "http://keep", PollInterval: time.Minute}
		parseJson(cfg)

		assert.Equal(t, "http://keep", cfg.ServerBaseURL)
		assert.Equal(t, time.Minute, cfg.PollInterval)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"lawlink", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"lawlink", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
