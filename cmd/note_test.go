package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLocalConfig writes a localfs store config under dir and returns its path
func writeLocalConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := "log:\n" +
		"  level: error\n" +
		"  file: " + filepath.Join(dir, "log.log") + "\n" +
		"store:\n" +
		"  type: localfs\n" +
		"  local-fs:\n" +
		"    save-path: " + filepath.Join(dir, "notes") + "\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := executeArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestNoteCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLocalConfig(t, dir)

	code, out, errOut := runCLI("add", "-c", cfg, "buy", "milk")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0. [ ] buy milk\n", out)

	code, out, _ = runCLI("add", "-c", cfg, "call mom")
	require.Equal(t, 0, code)
	assert.Equal(t, "1. [ ] call mom\n", out)

	code, out, _ = runCLI("toggle", "-c", cfg, "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "1. [x] call mom\n", out)

	code, _, _ = runCLI("rm", "-c", cfg, "0")
	require.Equal(t, 0, code)

	// 每条命令都是新进程，列表来自磁盘
	code, out, _ = runCLI("list", "-c", cfg)
	require.Equal(t, 0, code)
	assert.Equal(t, "0. [x] call mom\n", out)

	code, _, _ = runCLI("clear", "-c", cfg)
	require.Equal(t, 0, code)
	code, out, _ = runCLI("list", "-c", cfg)
	require.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestNoteCommands_BlankAddWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLocalConfig(t, dir)

	code, out, _ := runCLI("add", "-c", cfg, "   ")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "notes", "notes.json"))
}

func TestNoteCommands_ErrorsExitNonZero(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLocalConfig(t, dir)

	code, out, errOut := runCLI("toggle", "-c", cfg, "3")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.NotEmpty(t, errOut)

	code, _, errOut = runCLI("rm", "-c", cfg, "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `invalid index "abc"`)
}

func TestNoteCommands_BackendFailureGoesToStderr(t *testing.T) {
	dir := t.TempDir()
	cfg := writeLocalConfig(t, dir)

	// a directory where the notes file should be makes every read fail
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes", "notes.json"), 0755))

	code, out, errOut := runCLI("add", "-c", cfg, "buy milk")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.NotEmpty(t, errOut)
}
