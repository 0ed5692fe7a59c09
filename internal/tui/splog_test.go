package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog_Console(t *testing.T) {
	t.Run("writes plain messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)

		splog.Info("Total Δv: %.2f m/s", 12.5)
		splog.Tip("try calc")

		out := buf.String()
		require.Contains(t, out, "Total Δv: 12.50 m/s\n")
		require.Contains(t, out, "💡 try calc")
	})

	t.Run("messages without args are not formatted", func(t *testing.T) {
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)
		splog.Info("100% done")
		require.Equal(t, "100% done\n", buf.String())
	})

	t.Run("quiet suppresses console output", func(t *testing.T) {
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)
		splog.SetQuiet(true)

		splog.Info("hidden")
		splog.Page("hidden page")
		splog.Newline()
		require.Empty(t, buf.String())

		splog.SetQuiet(false)
		splog.Page("shown")
		require.Equal(t, "shown", buf.String())
	})

	t.Run("debug needs DEBUG", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)
		splog.Debug("secret")
		require.Empty(t, buf.String())
	})
}

func TestSplog_FileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "deltav.log")

	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, logPath, DefaultLogOptions())
	require.NoError(t, err)

	splog.SetQuiet(true)
	splog.Debug("dispatch calculate")
	splog.Info("Total Δv: 1.00 m/s")
	require.NoError(t, splog.Close())

	require.Empty(t, buf.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "dispatch calculate")
	require.Contains(t, string(data), "level=DEBUG")
	require.Contains(t, string(data), "level=INFO")
}

func TestCreateLumberjackLogger(t *testing.T) {
	t.Setenv("DELTAV_LOG_MAX_SIZE", "5")
	t.Setenv("DELTAV_LOG_MAX_BACKUPS", "bogus")
	t.Setenv("DELTAV_LOG_MAX_AGE", "")

	logger := createLumberjackLogger("deltav.log", LogOptions{MaxSize: 1, MaxBackups: 3, MaxAge: 7})
	require.Equal(t, 5, logger.MaxSize)
	require.Equal(t, 3, logger.MaxBackups)
	require.Equal(t, 7, logger.MaxAge)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("DELTAV_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())
}
