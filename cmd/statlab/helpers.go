package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"statlab/internal/dataset"
	"statlab/internal/stats"
	"statlab/internal/store"
)

// loadTable loads the configured dataset.
func loadTable() (*dataset.Table, error) {
	return dataset.Load(cfg.Dataset.Path)
}

// loadGroups loads the configured dataset and splits the weight column by
// the smoking indicator.
func loadGroups() (smokers, nonsmokers []float64, err error) {
	table, err := loadTable()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("rows", table.NumRows()))
	return table.SplitBy(cfg.Dataset.WeightColumn, cfg.Dataset.IndicatorColumn)
}

// openStore opens the configured run-history store.
func openStore() (*store.Store, error) {
	return store.New(cfg.Store.Path)
}

// saveRun persists one study execution and returns its id. Store failures
// are reported but do not fail the study; the results were already printed.
func saveRun(kind string, params map[string]interface{}, summary map[string]float64, values []float64) string {
	s, err := openStore()
	if err != nil {
		logger.Warn("run not recorded", zap.Error(err))
		return ""
	}
	defer s.Close()

	run := &store.Run{
		ID:        uuid.NewString(),
		Kind:      kind,
		Seed:      cfg.Simulation.Seed,
		Params:    params,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.SaveRun(run, values); err != nil {
		logger.Warn("run not recorded", zap.Error(err))
		return ""
	}
	return run.ID
}

// valueSummary converts a descriptive summary into the flat map stored with
// a run.
func valueSummary(values []float64) (map[string]float64, error) {
	s, err := stats.Describe(values)
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"n":      float64(s.N),
		"mean":   s.Mean,
		"sd":     s.StdDev,
		"min":    s.Min,
		"q1":     s.Q1,
		"median": s.Median,
		"q3":     s.Q3,
		"max":    s.Max,
	}, nil
}

// printRunID reports where a run was recorded.
func printRunID(id string) {
	if id != "" {
		fmt.Printf("\nrecorded as run %s\n", id)
	}
}
