// Package main provides the CLI entrypoint for the unit converter.
// It wires subcommands (convert, units, serve, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"converter/internal/config"
	"converter/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands. cfg is populated before any
// subcommand runs.
type app struct {
	cfg *config.Config
}

// newRootCommand sets up the root Cobra command. Configuration is loaded from
// the persistent --config flag once cobra has parsed it.
func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "converter",
		Short:        "Converts values between units of length, volume and temperature",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			a.cfg = cfg

			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		convertCommand(a),
		unitsCommand(a),
		serveCommand(a),
		jwtCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
