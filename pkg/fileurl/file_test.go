package fileurl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPath(t *testing.T) {
	assert.Equal(t, "notes", KeyPath("", "notes"))
	assert.Equal(t, "keep/notes", KeyPath("keep", "notes"))
	assert.Equal(t, "keep/notes", KeyPath("/keep/", "/notes"))
}

func TestWriteFileAtomic(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "notes.json")

	require.NoError(t, WriteFileAtomic(dst, []byte(`["x"]`), 0644))
	require.NoError(t, WriteFileAtomic(dst, []byte(`["y"]`), 0644))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `["y"]`, string(data))
	assert.True(t, IsExist(dst))

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
