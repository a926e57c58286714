package local_fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_SetGetDelete(t *testing.T) {
	tempDir := t.TempDir()
	client, err := NewClient(&Config{SavePath: tempDir})
	require.NoError(t, err)

	ctx := context.Background()

	_, ok, err := client.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, client.Set(ctx, "notes", `["buy milk"]`))

	saved, err := os.ReadFile(filepath.Join(tempDir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, `["buy milk"]`, string(saved))

	value, ok, err := client.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["buy milk"]`, value)

	require.NoError(t, client.Delete(ctx, "notes"))
	_, ok, err = client.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is not an error
	assert.NoError(t, client.Delete(ctx, "notes"))
}

func TestLocalFS_RejectsEscapingKeys(t *testing.T) {
	client, err := NewClient(&Config{SavePath: t.TempDir()})
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../notes", `a\b`} {
		err := client.Set(context.Background(), key, "[]")
		assert.True(t, errors.Is(err, ErrInvalidKey), key)
	}
}

func TestLocalFS_CancelledContext(t *testing.T) {
	client, err := NewClient(&Config{SavePath: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, client.Set(ctx, "notes", "[]"), context.Canceled)
}

func TestNewClient_RequiresPath(t *testing.T) {
	_, err := NewClient(&Config{})
	assert.Error(t, err)
}
