package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"statlab/internal/config"
	"statlab/internal/logging"
)

var (
	// Global flags
	configPath string
	dataPath   string
	seedFlag   int64
	verbose    bool

	// Loaded config
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "statlab",
	Short: "statlab - Monte Carlo simulation and permutation testing lab",
	Long: `statlab is a simulation laboratory for two-group studies.

It loads a whitespace-delimited dataset (by default the birth-weight study:
weight in grams plus a 0/1 maternal-smoking indicator), approximates sampling
distributions of the mean difference and the t-statistic by Monte Carlo
replication, compares them to theoretical normal and Student-t distributions
with QQ plots, and runs permutation tests for the group effect.

Every study run is deterministic for a fixed seed and is recorded in a local
run history, so results can be listed and re-rendered later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataPath != "" {
			cfg.Dataset.Path = dataPath
		}
		if cmd.Flags().Changed("seed") {
			cfg.Simulation.Seed = seedFlag
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := logging.Initialize(".", cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
			logger.Warn("debug logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "statlab.yaml", "path to the statlab config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "dataset path (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 42, "base RNG seed (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(tstatCmd)
	rootCmd.AddCommand(parametricCmd)
	rootCmd.AddCommand(permtestCmd)
	rootCmd.AddCommand(qqCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
