package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"statlab/internal/report"
	"statlab/internal/stats"
)

// initCmd writes a default config file to get a workspace started.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default statlab.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configPath)
		return nil
	},
}

// describeCmd summarizes the dataset by group.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Summarize the dataset by smoking status",
	Long: `Loads the configured dataset, splits the weight column by the smoking
indicator, and prints descriptive statistics per group alongside the
observed mean difference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		smokers, nonsmokers, err := loadGroups()
		if err != nil {
			return err
		}
		sSmoke, err := stats.Describe(smokers)
		if err != nil {
			return fmt.Errorf("smokers group: %w", err)
		}
		sNon, err := stats.Describe(nonsmokers)
		if err != nil {
			return fmt.Errorf("nonsmokers group: %w", err)
		}

		fmt.Print(report.SummaryTable(
			[]string{"smokers", "nonsmokers"},
			[]stats.Summary{sSmoke, sNon},
		))
		fmt.Printf("\nobserved mean difference (smokers - nonsmokers): %.2f\n", sSmoke.Mean-sNon.Mean)
		return nil
	},
}
