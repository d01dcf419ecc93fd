package restyutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutputWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	out := NewFilesystemOutput(dir)

	out.Write("1", "---- REQUEST ----")

	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "---- REQUEST ----", string(contents))
}

func TestNewFilesystemOutputClearsPreviousRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	NewFilesystemOutput(dir).Write("stale", "old dump")

	NewFilesystemOutput(dir)

	_, err := os.Stat(filepath.Join(dir, "stale"))
	require.True(t, os.IsNotExist(err))
}
