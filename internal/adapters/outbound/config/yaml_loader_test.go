package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/drewnoakes/validate-slnf/internal/adapters/outbound/config"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".validate-slnf.yaml"), []byte(content), 0644))
}

func newLoader() *appconfig.YAMLLoader {
	return appconfig.New(afero.NewOsFs())
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := newLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
verbose: true
skip_disk_check: true
pattern: "*.ci.slnf"
log_level: debug
`)

	cfg, err := newLoader().Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.SkipSolutionCheck)
	assert.True(t, cfg.SkipDiskCheck)
	assert.Equal(t, "*.ci.slnf", cfg.Pattern)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := newLoader().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .validate-slnf.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `log_level: chatty`)

	_, err := newLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .validate-slnf.yaml")
	assert.Contains(t, err.Error(), "chatty")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := newLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_LoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/custom.yaml", []byte("skip_solution_check: true\n"), 0644))

	cfg, err := appconfig.New(fs).LoadFile("/cfg/custom.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.SkipSolutionCheck)
	assert.Equal(t, "*.slnf", cfg.Pattern)
}

func TestYAMLLoader_LoadFileMissing(t *testing.T) {
	_, err := appconfig.New(afero.NewMemMapFs()).LoadFile("/cfg/none.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
