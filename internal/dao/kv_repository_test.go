package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/haierkeys/fast-note-keep/internal/domain"
	"github.com/haierkeys/fast-note-keep/pkg/writequeue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	cfg := DatabaseConfig{
		Type:        "sqlite",
		Path:        filepath.Join(t.TempDir(), "database", "db.sqlite3"),
		AutoMigrate: true,
	}
	db, err := NewDBEngineWithConfig(cfg, nil)
	require.NoError(t, err)

	wq := writequeue.New(nil, nil)
	t.Cleanup(func() {
		_ = wq.Shutdown(context.Background())
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	d := New(db, context.Background(), WithConfig(&cfg), WithWriteQueueManager(wq))
	require.NoError(t, d.Migrate())
	return d
}

func TestKVRepository_SetGetDelete(t *testing.T) {
	repo := NewKVRepository(newTestDao(t), "test")
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "notes", `["a"]`))
	require.NoError(t, repo.Set(ctx, "notes", `["a","b"]`))

	value, ok, err := repo.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, value)

	require.NoError(t, repo.Delete(ctx, "notes"))
	require.NoError(t, repo.Delete(ctx, "notes"))

	_, ok, err = repo.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVRepository_SetBatch(t *testing.T) {
	repo := NewKVRepository(newTestDao(t), "test")
	ctx := context.Background()

	require.NoError(t, repo.SetBatch(ctx, []domain.KVPair{
		{Key: "notes", Value: `["a","b"]`},
		{Key: "done", Value: `[0,1]`},
	}))

	notes, _, err := repo.Get(ctx, "notes")
	require.NoError(t, err)
	done, _, err := repo.Get(ctx, "done")
	require.NoError(t, err)

	assert.Equal(t, `["a","b"]`, notes)
	assert.Equal(t, `[0,1]`, done)
}

func TestKVRepository_NamespacesAreIsolated(t *testing.T) {
	d := newTestDao(t)
	a := NewKVRepository(d, "a")
	b := NewKVRepository(d, "b")
	ctx := context.Background()

	require.NoError(t, a.Set(ctx, "notes", `["from a"]`))

	_, ok, err := b.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUseDialectorRejectsUnknownType(t *testing.T) {
	_, err := NewDBEngineWithConfig(DatabaseConfig{Type: "oracle"}, nil)
	assert.Error(t, err)
}
