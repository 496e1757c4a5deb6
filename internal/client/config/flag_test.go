package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"lawlink", "-a", "http://10.0.0.1:8080", "-i", "4", "-d", "x.db", "-l", "x.log"},
			expected: &Config{
				ServerBaseURL: "http://10.0.0.1:8080",
				PollInterval:  4 * time.Second,
				DatabasePath:  "x.db",
				LogFile:       "x.log",
			},
		},
		{
			name:        "incorrect poll interval",
			args:        []string{"lawlink", "-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
