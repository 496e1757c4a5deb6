package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "text", format: FormatText, want: "msg=hello"},
		{name: "json", format: FormatJSON, want: `"msg":"hello"`},
		{name: "zap", format: FormatZap, want: `"msg":"hello"`},
		{name: "default", format: "", want: "msg=hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, tt.format, "info")
			require.NoError(t, err)

			l.Info(context.Background(), "hello", "k", "v")
			if z, ok := l.(*ZapLogger); ok {
				_ = z.Sync()
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.Error(t, err)
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, FormatText, "warn")
	require.NoError(t, err)

	l.Debug(context.Background(), "dbg")
	l.Info(context.Background(), "inf")
	l.Warn(context.Background(), "wrn")

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.NotContains(t, out, "msg=inf")
	assert.Contains(t, out, "msg=wrn")
}

func TestZapLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, FormatZap, "debug")
	require.NoError(t, err)

	child := l.With("conversation_id", "42")
	child.Debug(context.Background(), "poll tick")
	_ = l.(*ZapLogger).Sync()

	assert.Contains(t, buf.String(), `"conversation_id":"42"`)
	assert.Contains(t, buf.String(), `"msg":"poll tick"`)
}

func TestNew_RedactsSensitiveKeys(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatZap} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, format, "info")
			require.NoError(t, err)

			l.With("Authorization", "Bearer abc").Info(context.Background(), "login", "token", "eyJ.secret", "user_id", "42")
			if z, ok := l.(*ZapLogger); ok {
				_ = z.Sync()
			}

			out := buf.String()
			assert.NotContains(t, out, "eyJ.secret")
			assert.NotContains(t, out, "Bearer abc")
			assert.Contains(t, out, Redacted)
			assert.Contains(t, out, "42")
		})
	}
}

func TestRedactArgs_DoesNotMutateInput(t *testing.T) {
	args := []any{"password", "hunter2", "role", "client"}
	got := redactArgs(args)

	assert.Equal(t, []any{"password", Redacted, "role", "client"}, got)
	assert.Equal(t, "hunter2", args[1])

	plain := []any{"role", "client", "odd"}
	assert.Equal(t, plain, redactArgs(plain))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With("a", 1)
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
}
