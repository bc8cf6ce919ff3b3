package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/bewertigo/bewertigo/internal/adapters/outbound/config"
	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_city: Wien
benchmarks:
  tattoo studio: 66
min_thresholds:
  reviewSentiment: 10
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Wien", cfg.DefaultCity)
	assert.Equal(t, 66, cfg.Benchmarks["tattoo studio"])
	assert.InDelta(t, 10.0, cfg.MinThresholds["reviewSentiment"], 0.001)

	v, ok := cfg.BenchmarkTable().Lookup("Tattoo Studio")
	assert.True(t, ok)
	assert.Equal(t, 66, v)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .bewertigo.yaml")
}

func TestYAMLLoader_ValidationRejectsUnknownModule(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
min_thresholds:
  seo: 3
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .bewertigo.yaml")
	assert.Contains(t, err.Error(), `unknown module "seo"`)
}

func TestYAMLLoader_ValidationRejectsBenchmarkRange(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
benchmarks:
  cafe: 140
`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be between 0 and 100")
}

func TestTemplate_ParsesToDefaults(t *testing.T) {
	var cfg domain.AuditConfig
	require.NoError(t, yaml.Unmarshal([]byte(appconfig.Template), &cfg))
	assert.Equal(t, domain.DefaultConfig(), cfg)
}
