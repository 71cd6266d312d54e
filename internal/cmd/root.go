package cmd

import (
	"fmt"
	"os"

	"github.com/hubdispo/hubdispo/internal/config"
	"github.com/hubdispo/hubdispo/internal/logging"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "hubdispo",
	Short: "hubdispo - synthetic fleet data for the shipping dashboard",
	Long: `hubdispo generates a realistic, randomized fleet dataset for a Belgian
shipping and consolidation dashboard: shipments, groupage consolidation
groups and operational alerts.

The dataset can be served over a REST API, exported to JSON, YAML or
Parquet, loaded into MySQL/TiDB or PostgreSQL, or published to Kafka.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: search ./deploy, ., $HOME/.hubdispo, /etc/hubdispo)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed, 0 draws a fresh dataset (overrides generator.seed)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config and applies the persistent flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfigFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = seed
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func buildDataset(cfg *config.Config, counts synth.Counts) (*synth.Dataset, error) {
	g := synth.New(synth.WithSeed(cfg.Generator.Seed))
	ds, err := synth.Build(g, counts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	return ds, nil
}
