// Package config loads and applies the driver configuration.
//
// A configuration has four sections:
//
//   - Logging: level, encoding and outputs of the global zap logger
//   - Conversion: the integer narrowing policy of new buffers
//   - Diagnostics: the server name stamped on status records
//   - Metrics: whether conversion and diagnostic counters are recorded
//
// # Loading
//
// Load reads a YAML file over Default and substitutes ${VAR} references
// from the environment:
//
//	# odbc.yaml
//	logging:
//	  level: ${ODBC_LOG_LEVEL}
//	conversion:
//	  narrowing: saturate
//
// FromViper serves the CLI, where flags and NEBULA_ODBC_* variables override
// the file:
//
//	v := viper.New()
//	v.SetConfigFile("odbc.yaml")
//	_ = v.ReadInConfig()
//	cfg, err := config.FromViper(v)
//
// Apply validates a configuration and installs it process-wide. It is meant
// to run once, before the first handle is created.
package config
