package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidYear(t *testing.T) {
	assert.NoError(t, validYear("2024"))
	assert.NoError(t, validYear("0"))
	assert.NoError(t, validYear(""))
	assert.Error(t, validYear("twenty"))
	assert.Error(t, validYear(42))
}

func TestWriteInteractive_NoConflict(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "LICENSE.md")

	var buf bytes.Buffer
	require.NoError(t, writeInteractive(&buf, path, "rendered text"))
	assert.Contains(t, buf.String(), "Successfully created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rendered text", string(data))
}
