package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"statlab/internal/permutation"
	"statlab/internal/report"
	"statlab/internal/sim"
	"statlab/internal/watch"
)

var watchStudy string

// watchCmd re-runs a study whenever the dataset file changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run a study when the dataset changes",
	Long: `Watches the configured dataset file and re-runs the chosen study on
every save, using the configured defaults. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rerun, err := studyRunner(watchStudy)
		if err != nil {
			return err
		}

		w, err := watch.New(cfg.Dataset.Path, rerun)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("watching %s; re-running %q on change (Ctrl-C to stop)\n", cfg.Dataset.Path, watchStudy)
		if err := rerun(ctx); err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

// studyRunner maps a study name to a rerun callback over current config.
func studyRunner(name string) (func(ctx context.Context) error, error) {
	switch name {
	case "sample":
		return func(ctx context.Context) error {
			smokers, nonsmokers, err := loadGroups()
			if err != nil {
				return err
			}
			study := sim.MeanDiffStudy{
				GroupA: smokers, GroupB: nonsmokers,
				SampleSize:   cfg.Simulation.SampleSize,
				Replications: cfg.Simulation.Replications,
				Workers:      cfg.Simulation.Workers,
				Seed:         cfg.Simulation.Seed,
			}
			values, err := study.Run(ctx)
			if err != nil {
				return err
			}
			summary, err := valueSummary(values)
			if err != nil {
				return err
			}
			fmt.Printf("\nmean difference: mean %.3f, sd %.3f (%d replications)\n",
				summary["mean"], summary["sd"], len(values))
			fmt.Print(report.Histogram(values, 15, 40))
			return nil
		}, nil
	case "permtest":
		return func(ctx context.Context) error {
			smokers, nonsmokers, err := loadGroups()
			if err != nil {
				return err
			}
			alt, err := permutation.ParseAlternative(cfg.Permutation.Alternative)
			if err != nil {
				return err
			}
			res, err := permutation.Test(ctx, smokers, nonsmokers,
				cfg.Permutation.Permutations, cfg.Simulation.Seed, alt)
			if err != nil {
				return err
			}
			logger.Info("watch rerun", zap.Float64("p_value", res.PValue))
			fmt.Println()
			fmt.Print(report.PermResult(res))
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown study %q (want sample or permtest)", name)
}

func init() {
	watchCmd.Flags().StringVar(&watchStudy, "study", "permtest", "study to re-run: sample or permtest")
}
