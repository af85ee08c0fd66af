package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"statlab/internal/qq"
	"statlab/internal/report"
	"statlab/internal/stats"
)

var (
	qqRunID  string
	qqColumn string
	qqDist   string
	qqDF     float64
)

// qqCmd renders quantile-quantile comparisons.
var qqCmd = &cobra.Command{
	Use:   "qq",
	Short: "QQ plot of a stored run or a dataset column",
	Long: `Pairs empirical quantiles against a theoretical distribution. With
--run, plots the replicated values of a stored study; otherwise plots a
dataset column (default: the weight column). The normal comparison fits
mean and sd from the data; --dist t compares against Student-t with --df
degrees of freedom.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var values []float64
		var label string

		if qqRunID != "" {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			values, err = s.RunValues(qqRunID)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				return fmt.Errorf("run %s has no stored values", qqRunID)
			}
			label = "run " + qqRunID
		} else {
			col := qqColumn
			if col == "" {
				col = cfg.Dataset.WeightColumn
			}
			table, err := loadTable()
			if err != nil {
				return err
			}
			values, err = table.Column(col)
			if err != nil {
				return err
			}
			label = "column " + col
		}

		var dist qq.Dist
		switch qqDist {
		case "", "normal":
			dist = qq.Normal{Mean: stats.Mean(values), SD: stats.StdDev(values)}
		case "std-normal":
			dist = qq.Normal{SD: 1}
		case "t":
			if qqDF <= 0 {
				return fmt.Errorf("--dist t requires --df > 0")
			}
			dist = qq.StudentT{DF: qqDF}
		default:
			return fmt.Errorf("unknown distribution %q (want normal, std-normal, or t)", qqDist)
		}

		points, err := qq.Points(values, dist)
		if err != nil {
			return err
		}
		fmt.Printf("QQ plot: %s against %s (%d points)\n\n", label, dist.Name(), len(points))
		fmt.Print(report.QQPlot(points, 60, 20))
		return nil
	},
}

func init() {
	qqCmd.Flags().StringVar(&qqRunID, "run", "", "plot the values of a stored run")
	qqCmd.Flags().StringVar(&qqColumn, "column", "", "plot a dataset column (default: weight column)")
	qqCmd.Flags().StringVar(&qqDist, "dist", "normal", "theoretical distribution: normal, std-normal, or t")
	qqCmd.Flags().Float64Var(&qqDF, "df", 0, "degrees of freedom for --dist t")
}
