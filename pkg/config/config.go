package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/handle"
	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
	"github.com/ajitpratap0/nebula-odbc/pkg/metrics"
	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
)

// Config is the driver configuration. Every section carries yaml, json and
// mapstructure tags so the same struct serves files, dumps and viper.
type Config struct {
	// Logging configures the global zap logger
	Logging logger.Config `yaml:"logging" json:"logging" mapstructure:"logging"`

	// Conversion tunes the conversion engine
	Conversion ConversionConfig `yaml:"conversion" json:"conversion" mapstructure:"conversion"`

	// Diagnostics sets the origin stamped on status records
	Diagnostics DiagnosticsConfig `yaml:"diagnostics" json:"diagnostics" mapstructure:"diagnostics"`

	// Metrics switches prometheus recording
	Metrics MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

// ConversionConfig contains conversion engine settings.
type ConversionConfig struct {
	// Narrowing is the integer narrowing policy: wrap or saturate
	Narrowing string `yaml:"narrowing" json:"narrowing" mapstructure:"narrowing"`
}

// DiagnosticsConfig contains diagnostic record settings.
type DiagnosticsConfig struct {
	// ServerName is reported as SQL_DIAG_SERVER_NAME
	ServerName string `yaml:"server_name" json:"server_name" mapstructure:"server_name"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}

// Default returns the configuration a driver runs with when nothing is
// configured.
func Default() *Config {
	return &Config{
		Logging: logger.Config{
			Level:       "warn",
			Encoding:    "json",
			OutputPaths: []string{"stderr"},
		},
		Conversion: ConversionConfig{
			Narrowing: appbuf.NarrowWrap.String(),
		},
		Diagnostics: DiagnosticsConfig{
			ServerName: "nebula-odbc",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for values the driver cannot apply.
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return odbcerrors.Wrap(err, odbcerrors.ErrorTypeConfig, "unknown log level").
				WithDetail("field", "logging.level")
		}
	}
	switch c.Logging.Encoding {
	case "", "json", "console":
	default:
		return odbcerrors.Newf(odbcerrors.ErrorTypeConfig, "unknown log encoding %q", c.Logging.Encoding).
			WithDetail("field", "logging.encoding")
	}
	if _, ok := appbuf.ParseNarrowing(c.Conversion.Narrowing); !ok {
		return odbcerrors.Newf(odbcerrors.ErrorTypeConfig, "narrowing must be wrap or saturate, got %q", c.Conversion.Narrowing).
			WithDetail("field", "conversion.narrowing")
	}
	return nil
}

// NarrowingPolicy returns the parsed narrowing policy, wrap when unset or
// invalid.
func (c *ConversionConfig) NarrowingPolicy() appbuf.Narrowing {
	p, _ := appbuf.ParseNarrowing(c.Narrowing)
	return p
}

// Apply validates c and installs it process-wide: the global logger, the
// default narrowing policy, the server name and metrics recording.
func (c *Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := logger.Init(c.Logging); err != nil {
		return odbcerrors.Wrap(err, odbcerrors.ErrorTypeConfig, "failed to initialize logger")
	}
	appbuf.SetDefaultNarrowing(c.Conversion.NarrowingPolicy())
	handle.SetServerName(c.Diagnostics.ServerName)
	metrics.SetEnabled(c.Metrics.Enabled)

	logger.Debug("configuration applied",
		zap.String("narrowing", c.Conversion.Narrowing),
		zap.String("server_name", c.Diagnostics.ServerName),
		zap.Bool("metrics", c.Metrics.Enabled))
	return nil
}
