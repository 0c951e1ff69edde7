package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	require.Error(t, err)
}

func TestNewWithFileSink(t *testing.T) {
	file := filepath.Join(t.TempDir(), "workio.log")

	log, err := NewWithOptions("info", Options{File: file, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Infow("hello", "component", "test")
	log.Debugw("dropped")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
	require.NotContains(t, string(data), "dropped")
}
