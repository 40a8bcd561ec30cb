package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SYMPTOQUIZ_DB", "SYMPTOQUIZ_LOG_LEVEL", "SYMPTOQUIZ_LOG_FILE",
		"SYMPTOQUIZ_SHARE_FILE", "SYMPTOQUIZ_SAVE_HISTORY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, t.TempDir(), "config.yaml", `
db_path: /tmp/q.db
save_history: false
log:
  level: debug
share:
  file: /tmp/shared.txt
`)

	cfg, err := Load(LoadOptions{Path: p})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
	assert.False(t, cfg.SaveHistory)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/shared.txt", cfg.Share.File)
}

func TestParseKeepsDefaultsForAbsentKeys(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("log:\n  file: /tmp/x.log\n"), cfg))
	assert.True(t, cfg.SaveHistory)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: blue\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"wrong type", "save_history: sometimes\n"},
		{"nested unknown", "share:\n  url: http://x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Parse([]byte(tt.yaml), Default())
			assert.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("  \n"), cfg))
	assert.Equal(t, Default(), cfg)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, t.TempDir(), "config.yaml", "db_path: /from/file.db\n")
	t.Setenv("SYMPTOQUIZ_DB", "/from/env.db")
	t.Setenv("SYMPTOQUIZ_SAVE_HISTORY", "false")
	t.Setenv("SYMPTOQUIZ_LOG_LEVEL", "warn")

	cfg, err := Load(LoadOptions{Path: p})
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.False(t, cfg.SaveHistory)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvOverrideBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYMPTOQUIZ_SAVE_HISTORY", "perhaps")
	_, err := Load(LoadOptions{})
	assert.Error(t, err)
}

func TestEnvOverrideBadLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYMPTOQUIZ_LOG_LEVEL", "verbose")
	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SYMPTOQUIZ_LOG_LEVEL")

	// The file path rejects the same value.
	cfg := Default()
	assert.Error(t, Parse([]byte("log:\n  level: verbose\n"), cfg))
}

func TestDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SYMPTOQUIZ_SHARE_FILE")
	t.Cleanup(func() { os.Unsetenv("SYMPTOQUIZ_SHARE_FILE") })

	env := writeFile(t, t.TempDir(), ".env", "SYMPTOQUIZ_SHARE_FILE=/from/dotenv.txt\n")

	cfg, err := Load(LoadOptions{DotEnv: env})
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.txt", cfg.Share.File)
}

func TestDotEnvMissingIsIgnored(t *testing.T) {
	clearEnv(t)
	_, err := Load(LoadOptions{DotEnv: filepath.Join(t.TempDir(), ".env")})
	assert.NoError(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DBPath = filepath.Join(dir, "data", "q.db")

	require.NoError(t, cfg.Resolve())
	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.Equal(t, filepath.Join(dir, "data", "symptoquiz.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(dir, "data", "shared.txt"), cfg.Share.File)
}
