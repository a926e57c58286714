package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T, storeType string) *AppConfig {
	t.Helper()
	c, err := ParseConfig([]byte("store:\n  type: " + storeType + "\n"))
	require.NoError(t, err)

	dir := t.TempDir()
	c.Store.LocalFS.SavePath = filepath.Join(dir, "notes")
	c.Database.Path = filepath.Join(dir, "notes.sqlite3")
	return c
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, zap.NewNop())
	assert.Error(t, err)
	_, err = NewApp(testConfig(t, "memory"), nil)
	assert.Error(t, err)
}

func TestNewApp_NotesSurviveRestart(t *testing.T) {
	for _, storeType := range []string{"database", "localfs"} {
		t.Run(storeType, func(t *testing.T) {
			cfg := testConfig(t, storeType)
			ctx := context.Background()

			first, err := NewApp(cfg, zap.NewNop())
			require.NoError(t, err)
			require.NoError(t, first.LoadNotes(ctx))

			_, err = first.NoteService.Add(ctx, "buy milk")
			require.NoError(t, err)
			_, err = first.NoteService.Add(ctx, "call mom")
			require.NoError(t, err)
			_, err = first.NoteService.Toggle(ctx, 1)
			require.NoError(t, err)
			require.NoError(t, first.Shutdown(ctx))
			assert.True(t, first.IsShuttingDown())

			second, err := NewApp(cfg, zap.NewNop())
			require.NoError(t, err)
			defer second.Shutdown(ctx)
			require.NoError(t, second.LoadNotes(ctx))

			notes := second.NoteService.List()
			require.Len(t, notes, 2)
			assert.Equal(t, "buy milk", notes[0].Text)
			assert.Equal(t, 0, notes[0].Done)
			assert.Equal(t, "call mom", notes[1].Text)
			assert.Equal(t, 1, notes[1].Done)
		})
	}
}

func TestNewApp_DatabaseNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "database")

	work, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, work.LoadNotes(ctx))
	_, err = work.NoteService.Add(ctx, "work item")
	require.NoError(t, err)
	require.NoError(t, work.Shutdown(ctx))

	other := *cfg
	other.Store.Namespace = "home"
	home, err := NewApp(&other, zap.NewNop())
	require.NoError(t, err)
	defer home.Shutdown(ctx)
	require.NoError(t, home.LoadNotes(ctx))
	assert.Equal(t, 0, home.NoteService.Len())
}

func TestNewApp_CorruptStoreFailsLoad(t *testing.T) {
	ctx := context.Background()
	a, err := NewApp(testConfig(t, "memory"), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, a.KV.Set(ctx, "notes", "{broken"))

	assert.ErrorIs(t, a.LoadNotes(ctx), code.ErrorNoteDataCorrupt)
}
