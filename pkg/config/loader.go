package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
)

// EnvPrefix prefixes the environment variables FromViper reads, as in
// NEBULA_ODBC_CONVERSION_NARROWING.
const EnvPrefix = "NEBULA_ODBC"

// Load reads a YAML configuration file over the defaults. ${VAR} references
// are replaced with environment values before parsing; unset variables
// become empty.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the operator
	if err != nil {
		return nil, odbcerrors.Wrap(err, odbcerrors.ErrorTypeFile, "failed to read config file").
			WithDetail("path", filePath)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, odbcerrors.Wrap(err, odbcerrors.ErrorTypeConfig, "failed to parse YAML").
			WithDetail("path", filePath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to a YAML file.
func Save(filePath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetDefaults registers every key of the default configuration with v, so
// environment overrides resolve even when no file sets the key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("logging.encoding", d.Logging.Encoding)
	v.SetDefault("logging.output_paths", d.Logging.OutputPaths)
	v.SetDefault("conversion.narrowing", d.Conversion.Narrowing)
	v.SetDefault("diagnostics.server_name", d.Diagnostics.ServerName)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// FromViper builds a configuration from v: defaults, then whatever v was
// given (a config file, bound flags), then NEBULA_ODBC_* environment
// variables.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, odbcerrors.Wrap(err, odbcerrors.ErrorTypeConfig, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
