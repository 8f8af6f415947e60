// Package cli implements the odbcconv command line: it drives the
// conversion engine and the diagnostic layer from the shell and prints JSON.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajitpratap0/nebula-odbc/pkg/config"
	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
)

// NewRootCommand builds the odbcconv command tree. Each call gets its own
// viper instance, so commands built in tests do not share flags.
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "odbcconv",
		Short: "Inspect ODBC application buffer conversions",
		Long: `odbcconv writes typed values into application buffers, reads them back,
and reports the conversion outcome and the diagnostic records a driver would
raise for it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			if err := cfg.Apply(); err != nil {
				return err
			}
			logger.Debug("starting command",
				zap.String("command", cmd.Name()),
				zap.String("config", configFile))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "driver configuration file (yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("narrowing", "wrap", "integer narrowing policy (wrap, saturate)")
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("conversion.narrowing", flags.Lookup("narrowing"))

	root.AddCommand(
		newVersionCommand(version),
		newPutCommand(),
		newGetCommand(),
		newMatrixCommand(),
	)
	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "odbcconv v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
