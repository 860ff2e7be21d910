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
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
		"resume": "resume.txt",
		"industry": "tech",
		"role_level": "senior",
		"pages": 2,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "tech", cfg.Industry)
	assert.Equal(t, "senior", cfg.RoleLevel)
	assert.Equal(t, 2, cfg.Pages)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("bad JSON", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.json", "{bad")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.txt", "text")
	cohort := writeFile(t, dir, "cohort.json", "[]")

	t.Run("valid", func(t *testing.T) {
		cfg := &Config{Resume: resume, Cohort: cohort}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("cohort and database are mutually exclusive", func(t *testing.T) {
		cfg := &Config{Cohort: cohort, DatabaseURL: "postgres://localhost/refs"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative pages", func(t *testing.T) {
		cfg := &Config{Pages: -1}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing resume file", func(t *testing.T) {
		cfg := &Config{Resume: filepath.Join(dir, "missing.txt")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing cohort file", func(t *testing.T) {
		cfg := &Config{Cohort: filepath.Join(dir, "missing.json")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty config is valid", func(t *testing.T) {
		assert.NoError(t, (&Config{}).Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt", Industry: "tech"}
	defaults := Config{Resume: "default.txt", Industry: "finance", RoleLevel: "senior", Pages: 2}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "mine.txt", merged.Resume, "explicit value wins")
	assert.Equal(t, "tech", merged.Industry)
	assert.Equal(t, "senior", merged.RoleLevel, "empty field filled from defaults")
	assert.Equal(t, 2, merged.Pages)
}

func TestMergeWithDefaults_DatabaseURLFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/refs")

	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, "postgres://env/refs", merged.DatabaseURL)

	merged = (&Config{DatabaseURL: "postgres://explicit/refs"}).MergeWithDefaults(Config{})
	assert.Equal(t, "postgres://explicit/refs", merged.DatabaseURL, "explicit URL beats the environment")
}
