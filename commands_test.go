package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_NAME", filepath.Join(t.TempDir(), "prompts.db"))
	t.Setenv("REDIS_HOST", "")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FILENAME", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCommandIsRepeatable(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 44 prompts, Added 6 new prompts")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 prompts, Added 0 new prompts")
}

func TestMigrateCommand(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "migrate")
	require.NoError(t, err)

	_, err = run(t, "migrate", "--rollback")
	require.NoError(t, err)
	migrateRollback = false
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "promptvault dev\n", out)
}
