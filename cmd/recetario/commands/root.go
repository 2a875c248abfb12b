// Package commands implements the recetario CLI.
package commands

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/extract"
	"github.com/recetario-ai/recetario/internal/observability"
	"github.com/recetario-ai/recetario/internal/service"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "recetario",
	Short: "Ask the recipe book questions from the terminal",
	Long: `Recetario answers natural-language cooking questions grounded in the
recipe-book PDF. The corpus is rebuilt from the source document on every run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// cliLogger returns a console logger honouring the verbose flag.
func cliLogger(cfg *config.Config) *observability.Logger {
	level := cfg.Observability.LogLevel
	if !verbose {
		level = "error"
	}
	return observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: "recetario",
	})
}

// buildService loads config and runs the full corpus build.
func buildService(ctx context.Context) (*service.QueryService, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger := cliLogger(cfg)

	embedder, err := service.NewEmbedder(cfg)
	if err != nil {
		return nil, nil, err
	}

	generator, err := service.NewGenerator(cfg)
	if err != nil {
		return nil, nil, err
	}

	svc, err := service.New(ctx, cfg, extract.NewExtractor(logger), embedder, generator, logger)
	if err != nil {
		return nil, nil, err
	}

	return svc, cfg, nil
}
