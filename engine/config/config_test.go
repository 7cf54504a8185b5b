package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := FromEnv(mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(mapLookup(map[string]string{
		"ARENA_TICK_RATE":    "30",
		"ARENA_SEED":         "99",
		"ARENA_ENEMIES":      "12",
		"ARENA_TEMPLATES":    "templates.yaml",
		"ARENA_SOAK_LEVELS":  "8",
		"ARENA_SOAK_SECONDS": "5.5",
		"LOG_LEVEL":          "debug",
		"LOG_FORMAT":         "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, 30.0, c.TickRate)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, 12, c.Enemies)
	assert.Equal(t, "templates.yaml", c.TemplatesPath)
	assert.Equal(t, 8, c.SoakLevels)
	assert.Equal(t, 5.5, c.SoakSeconds)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"ARENA_TICK_RATE":   "fast",
		"ARENA_SEED":        "1.5",
		"ARENA_ENEMIES":     "-1",
		"ARENA_SOAK_LEVELS": "0",
	}
	for k, v := range tests {
		_, err := FromEnv(mapLookup(map[string]string{k: v}))
		assert.ErrorIs(t, err, ErrInvalidConfig, "%s=%s", k, v)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ARENA_ENEMIES=7\n"), 0o600))
	require.NoError(t, os.Unsetenv("ARENA_ENEMIES"))
	t.Cleanup(func() { os.Unsetenv("ARENA_ENEMIES") })

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Enemies)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}
