package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	} {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestLoggersWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetRawLogLevel("warn")
	t.Cleanup(func() { SetLogLevel(slog.LevelInfo) })

	GetLogger().Info("dropped")
	GetLogger().Warn("kept", "tab", 2)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(2), rec["tab"])
}

func TestInternalLevelIsIndependent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetInternalLogLevel(slog.LevelError)
	GetInternalLogger().Debug("quiet")
	assert.Zero(t, buf.Len())

	SetInternalLogLevel(slog.LevelDebug)
	t.Cleanup(func() { SetInternalLogLevel(slog.LevelError) })
	GetInternalLogger().Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestLogPathCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "strip.log")
	SetOutput(nil)
	SetLogPath(path)
	t.Cleanup(func() {
		SetLogPath("")
		SetOutput(nil)
	})

	GetLogger().Error("to file")
	require.NoError(t, CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
