package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("Mod", "debug message", nil)
	l.Info("Mod", "info message", map[string]interface{}{"note_id": 3})
	l.Warn("Mod", "warn message", nil)
	l.Error("Mod", "error message", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Mod", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{}, entries[0].ContextMap()["details"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, map[string]interface{}{"note_id": 3}, entries[1].ContextMap()["details"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l := NewZapLogger(path, true)
	l.Info("Test", "hello", nil)
	_ = l.Sync()

	assert.FileExists(t, path)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Error("Test", "ignored", nil)
		_ = l.Sync()
	})
}
