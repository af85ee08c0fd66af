package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"statlab/internal/logging"
	"statlab/internal/report"
)

var runsLimit int

// runsCmd lists recorded study runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded study runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}
		fmt.Printf("%-36s  %-10s  %-12s  %s\n", "id", "kind", "seed", "created")
		for _, run := range runs {
			fmt.Printf("%-36s  %-10s  %-12d  %s\n",
				run.ID, run.Kind, run.Seed, run.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

// reportCmd renders a markdown report for one run.
var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Render a study report for a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timer := logging.StartTimer(logging.CategoryReport, "render report")
		defer timer.Stop()

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.GetRun(args[0])
		if err != nil {
			return err
		}
		values, err := s.RunValues(run.ID)
		if err != nil {
			return err
		}

		out, err := report.RenderMarkdown(report.RunMarkdown(run, values))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
}
