package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "explicit missing config file should fail")

	cfg, err = loadInDir(t, "")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Profile)
	assert.Equal(t, "http://localhost:8529", cfg.Local.Endpoint)
	assert.Equal(t, "root", cfg.Local.Username)
	assert.Equal(t, "FOAF", cfg.Local.DatabasePrefix)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "last-wins", cfg.Converter.MergePolicy)
	assert.Equal(t, "info", cfg.Logger.Level)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := loadInDir(t, `
profile: local
logger:
  level: debug
  format: json
local:
  endpoint: http://arango.internal:8529
  database_prefix: Demo
converter:
  merge_policy: collect
  stable_keys: true
`)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "http://arango.internal:8529", cfg.Local.Endpoint)
	assert.Equal(t, "Demo", cfg.Local.DatabasePrefix)
	assert.Equal(t, "collect", cfg.Converter.MergePolicy)
	assert.True(t, cfg.Converter.StableKeys)
	require.NoError(t, cfg.Validate())
}

func TestCloudPasswordFromEnvironment(t *testing.T) {
	t.Setenv("ARANGO_CLOUD_PASSWORD", "s3cret")

	cfg, err := loadInDir(t, `
profile: cloud
cloud:
  endpoint: https://cluster.arangodb.cloud:8529
`)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Cloud.Password)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.Cloud, cfg.Arango())
}

func TestCloudPasswordNeverReadFromFile(t *testing.T) {
	t.Setenv("ARANGO_CLOUD_PASSWORD", "")
	t.Setenv("FOAF_CLOUD_PASSWORD", "")

	cfg, err := loadInDir(t, `
profile: cloud
cloud:
  endpoint: https://cluster.arangodb.cloud:8529
  password: checked-in-secret
`)
	require.NoError(t, err)

	assert.Empty(t, cfg.Cloud.Password)
	assert.Error(t, cfg.Validate(), "cloud profile without env password must not validate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown profile", func(c *Config) { c.Profile = "staging" }, true},
		{"cloud without endpoint", func(c *Config) { c.Profile = "cloud"; c.Cloud.Password = "x" }, true},
		{"cloud without password", func(c *Config) {
			c.Profile = "cloud"
			c.Cloud.Endpoint = "https://cluster.example:8529"
		}, true},
		{"unknown merge policy", func(c *Config) { c.Converter.MergePolicy = "newest" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadInDir(t, "")
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// loadInDir writes the yaml content (if any) as foafgraph.yaml into a fresh
// working directory and loads the configuration from there.
func loadInDir(t *testing.T, content string) (*Config, error) {
	t.Helper()

	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "foafgraph.yaml"), []byte(content), 0o600))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return Load("")
}
