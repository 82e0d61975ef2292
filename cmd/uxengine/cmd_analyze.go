package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"uxengine/internal/engine"
	"uxengine/internal/metrics"
	"uxengine/internal/types"
)

var jsonOutput bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [snapshot.json...]",
	Short: "Run the engine over recorded session snapshots",
	Long: `Loads one or more session snapshot files (platform string, behavior
signals, device context, user path, and live metrics in a single JSON
document), runs the full decision pipeline over each, and prints the
resulting bundles. Multiple snapshots are evaluated concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print decisions as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.MustNew(cfg.Metrics.Namespace, prometheus.NewRegistry())
	}

	eng, err := engine.New(engine.Options{Config: cfg, Logger: logger, Metrics: m})
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	decisions := make([]types.Decision, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			in, err := loadSnapshot(path)
			if err != nil {
				return err
			}
			decisions[i] = eng.Optimize(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	}

	for i, d := range decisions {
		fmt.Fprintln(cmd.OutOrStdout(), renderDecision(args[i], d))
	}
	return nil
}

func loadSnapshot(path string) (types.SessionInput, error) {
	var in types.SessionInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return in, nil
}
