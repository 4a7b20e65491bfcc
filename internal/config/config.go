// Package config holds the demo configuration: connection profiles for the
// local and cloud ArangoDB deployments, the optional Neo4j target, data file
// paths and converter settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	// Profile selects the active ArangoDB deployment: "local" or "cloud".
	Profile string `mapstructure:"profile"`

	Logger    LoggerConfig    `mapstructure:"logger"`
	Local     ArangoConfig    `mapstructure:"local"`
	Cloud     ArangoConfig    `mapstructure:"cloud"`
	Neo4j     Neo4jConfig     `mapstructure:"neo4j"`
	Data      DataConfig      `mapstructure:"data"`
	Converter ConverterConfig `mapstructure:"converter"`
}

// LoggerConfig holds the logger settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ArangoConfig holds one ArangoDB deployment profile.
type ArangoConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	DatabasePrefix string `mapstructure:"database_prefix"`
}

// Neo4jConfig holds the optional Neo4j target for the LPGT model.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// DataConfig points at the RDF input. An empty path selects the embedded
// sample dataset.
type DataConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// ConverterConfig holds the conversion settings.
type ConverterConfig struct {
	// MergePolicy for repeated literal predicates: last-wins, first-wins or
	// collect.
	MergePolicy string `mapstructure:"merge_policy"`
	// StableKeys derives node keys from a hash of the RDF identifier.
	StableKeys bool `mapstructure:"stable_keys"`
}

// Load reads the configuration from the given file (or foafgraph.yaml in the
// working directory and $HOME), layered under FOAF_* environment variables.
// The cloud ArangoDB password is only ever taken from the environment.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("profile", "local")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("local.endpoint", "http://localhost:8529")
	v.SetDefault("local.username", "root")
	v.SetDefault("local.password", "openSesame")
	v.SetDefault("local.database_prefix", "FOAF")
	v.SetDefault("cloud.endpoint", "")
	v.SetDefault("cloud.username", "root")
	v.SetDefault("cloud.database_prefix", "FOAF")
	v.SetDefault("neo4j.uri", "bolt://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "password")
	v.SetDefault("neo4j.database", "neo4j")
	v.SetDefault("data.path", "")
	v.SetDefault("data.format", "")
	v.SetDefault("converter.merge_policy", "last-wins")
	v.SetDefault("converter.stable_keys", false)

	v.SetEnvPrefix("FOAF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("foafgraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The cloud password never comes from the config file, so a checked-in
	// yaml cannot leak cluster credentials. ARANGO_CLOUD_PASSWORD is the
	// original deployment's variable.
	cfg.Cloud.Password = firstEnv("ARANGO_CLOUD_PASSWORD", "FOAF_CLOUD_PASSWORD")

	return &cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Arango returns the ArangoDB profile selected by Profile.
func (c *Config) Arango() ArangoConfig {
	if c.Profile == "cloud" {
		return c.Cloud
	}
	return c.Local
}

// Validate checks the configuration for problems that would only surface
// halfway through a demo run.
func (c *Config) Validate() error {
	switch c.Profile {
	case "local", "cloud":
	default:
		return fmt.Errorf("unknown profile %q (want local or cloud)", c.Profile)
	}

	if c.Profile == "cloud" {
		if c.Cloud.Endpoint == "" {
			return fmt.Errorf("cloud profile selected but cloud.endpoint is not set")
		}
		if c.Cloud.Password == "" {
			return fmt.Errorf("cloud profile selected but no password set (set ARANGO_CLOUD_PASSWORD)")
		}
	}

	switch c.Converter.MergePolicy {
	case "last-wins", "first-wins", "collect":
	default:
		return fmt.Errorf("unknown merge policy %q", c.Converter.MergePolicy)
	}

	return nil
}
