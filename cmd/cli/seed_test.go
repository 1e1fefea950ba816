package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"STORE_BACKEND: sqlite\nSQLITE_PATH: "+filepath.Join(dir, "recipes.db")+"\n",
	), 0644))

	defaults := filepath.Join(dir, "defaults.json")
	require.NoError(t, os.WriteFile(defaults, []byte(
		`[{"category":"mains","name":"Risotto"},{"category":"sides","name":"Focaccia"}]`,
	), 0644))

	out, err := runCLI(t, "--config", configPath, "seed", "--file", defaults)
	require.NoError(t, err)
	assert.JSONEq(t, `{"seeded":true,"count":2}`, out)

	out, err = runCLI(t, "--config", configPath, "seed", "--file", defaults)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skipped":true,"count":2}`, out)
}

func TestSeedCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "seed", "--file", "does-not-exist.json")
	assert.Error(t, err)
}

func TestMigrateCommand_FileBackend(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"STORE_BACKEND: file\nDATA_FILE: "+filepath.Join(dir, "recipes.json")+"\n",
	), 0644))

	_, err := runCLI(t, "--config", configPath, "migrate")
	assert.NoError(t, err)
}
