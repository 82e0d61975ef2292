// Command uxengine is an operator tool around the UX intelligence engine:
// it evaluates recorded session snapshots and manages the engine config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"uxengine/internal/config"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger, initialized in PersistentPreRunE
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "uxengine",
	Short: "uxengine - visitor classification and UX adaptation engine",
	Long: `uxengine classifies visitors into behavioral archetypes and derives
layout, intent, and real-time adaptation decisions from session signals.

The engine itself is a library; this tool runs it over recorded session
snapshots for debugging, fixture validation, and threshold tuning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg = zap.NewDevelopmentConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.DefaultConfig()
		fmt.Printf("%s %s\n", cfg.Name, cfg.Version)
	},
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "uxengine.yaml", "path to the engine config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
