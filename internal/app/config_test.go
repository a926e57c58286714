package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/fast-note-keep/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	c, err := ParseConfig([]byte("server:\n  http-port: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.HttpPort)
	assert.Equal(t, ":9001", c.Server.PrivateHttpListen)
	assert.Equal(t, "database", c.Store.Type)
	assert.Equal(t, "notes", c.Store.NotesKey)
	assert.Equal(t, "done", c.Store.DoneKey)
	assert.Equal(t, "storage/notes", c.Store.LocalFS.SavePath)
	assert.Equal(t, "sqlite", c.Database.Type)

	nc := c.GetNoteServiceConfig()
	assert.Equal(t, service.DefaultPersistTimeout, nc.PersistTimeout)
}

func TestParseConfig_StoreSection(t *testing.T) {
	data := []byte(`
store:
  type: localfs
  persist-timeout: 3s
  notes-key: my-notes
  local-fs:
    save-path: /tmp/keep
`)
	c, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "localfs", c.Store.Type)
	assert.Equal(t, "/tmp/keep", c.Store.LocalFS.SavePath)
	assert.Equal(t, "done", c.Store.DoneKey)

	nc := c.GetNoteServiceConfig()
	assert.Equal(t, "my-notes", nc.NotesKey)
	assert.Equal(t, 3*time.Second, nc.PersistTimeout)
}

func TestParseConfig_UnknownStoreType(t *testing.T) {
	_, err := ParseConfig([]byte("store:\n  type: floppy\n"))
	assert.Error(t, err)
}

func TestLoadConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  type: memory\n"), 0644))

	c, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	c.Store.Namespace = "work"
	require.NoError(t, c.Save())

	again, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", again.Store.Type)
	assert.Equal(t, "work", again.Store.Namespace)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
