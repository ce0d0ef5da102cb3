package main

import (
	"fmt"

	"mazee-site/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Mazee Group brochure site",
	Long: `Serves the Mazee Group brochure site: home, catalogue and project pages
in English, Georgian and Russian, backed by static catalogue data.

Configuration is read from the environment (SERVER_PORT, LOG_LEVEL,
DATA_DIR, S3_ENABLED, ADMIN_API_KEY, ...). Flags override the listen
address and the log level.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json, console)")
}

// setup loads the environment configuration, applies flag overrides and
// builds the logger.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logger.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logger.Format, _ = cmd.Flags().GetString("log-format")
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, config.NewLogger(cfg.Logger), nil
}
