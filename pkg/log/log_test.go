package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		level.Set(slog.LevelWarn)
	})
	return &buf
}

func TestConfigure(t *testing.T) {
	t.Setenv(EnvLevel, "")
	tests := []struct {
		verbose, quiet bool
		want           slog.Level
	}{
		{false, false, slog.LevelWarn},
		{true, false, slog.LevelDebug},
		{false, true, slog.LevelError},
		{true, true, slog.LevelError},
	}
	for _, tt := range tests {
		require.NoError(t, Configure(tt.verbose, tt.quiet))
		assert.Equal(t, tt.want, Level())
	}
}

func TestConfigureEnvOverride(t *testing.T) {
	capture(t)
	t.Setenv(EnvLevel, "info")
	require.NoError(t, Configure(false, true))
	assert.Equal(t, slog.LevelInfo, Level())

	t.Setenv(EnvLevel, "loud")
	assert.ErrorContains(t, Configure(false, false), EnvLevel)
}

func TestLoggerFollowsOutputAndLevel(t *testing.T) {
	buf := capture(t)
	l := Logger()

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, SetLevel("debug"))
	l.Debug("shown", "branch", "main")
	assert.Contains(t, buf.String(), "msg=shown branch=main")

	var other bytes.Buffer
	SetOutput(&other)
	Warn("moved")
	assert.NotContains(t, buf.String(), "moved")
	assert.Contains(t, other.String(), "level=WARN msg=moved")
}
