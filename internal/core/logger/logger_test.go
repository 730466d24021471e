package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToWriterTrimsNewlines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := ToWriter(zap.New(core), zapcore.WarnLevel)

	n, err := w.Write([]byte("slow sql\r\n"))
	require.NoError(t, err)
	assert.Equal(t, len("slow sql\r\n"), n)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "slow sql", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestToWriterRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := ToWriter(zap.New(core), zapcore.InfoLevel)

	_, err := w.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestNewWithRotateWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	l, cleanup := New(Options{
		Level: "info",
		JSON:  true,
		Rotate: FileRotate{
			Enable:    true,
			Filename:  file,
			MaxSizeMB: 1,
		},
	})
	l.Info("hello")
	cleanup()

	assert.FileExists(t, file)
}
