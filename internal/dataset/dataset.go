// Package dataset loads whitespace-delimited data files with a header row
// into typed column tables. The canonical input is the birth-weight study:
// one row per infant with the weight in grams, a 0/1 smoking indicator for
// the mother, and numeric covariates.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"statlab/internal/logging"
)

// ErrNoSuchColumn is returned when a named column is absent from the table.
var ErrNoSuchColumn = errors.New("no such column")

// Table is a column-oriented numeric table.
type Table struct {
	columns []string
	data    map[string][]float64
	rows    int
}

// Load reads a whitespace-delimited file with a header row. Every field
// after the header must parse as a float; malformed rows are an error, not
// a skip, so a truncated file never silently changes study results.
func Load(path string) (*Table, error) {
	timer := logging.StartTimer(logging.CategoryDataset, "Load")
	defer timer.Stop()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("dataset %s is empty", path)
	}
	header := strings.Fields(scanner.Text())
	if len(header) == 0 {
		return nil, fmt.Errorf("dataset %s has a blank header row", path)
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
	}

	t := &Table{
		columns: header,
		data:    make(map[string][]float64, len(header)),
	}
	for _, name := range header {
		t.data[name] = nil
	}

	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", line, len(header), len(fields))
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
			}
			t.data[header[i]] = append(t.data[header[i]], v)
		}
		t.rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	logging.Dataset("loaded %s: %d rows, %d columns", path, t.rows, len(header))
	return t, nil
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.rows
}

// Column returns the values of a named column.
func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNoSuchColumn, name, t.columns)
	}
	return append([]float64(nil), vals...), nil
}

// SplitBy partitions the value column into two samples by the indicator
// column: rows where the indicator is nonzero land in the first sample.
// For the birth-weight study that is (smokers, nonsmokers).
func (t *Table) SplitBy(valueCol, indicatorCol string) (ones, zeros []float64, err error) {
	values, err := t.Column(valueCol)
	if err != nil {
		return nil, nil, err
	}
	labels, err := t.Column(indicatorCol)
	if err != nil {
		return nil, nil, err
	}
	for i, label := range labels {
		if label != 0 {
			ones = append(ones, values[i])
		} else {
			zeros = append(zeros, values[i])
		}
	}
	logging.Dataset("split %s by %s: %d / %d", valueCol, indicatorCol, len(ones), len(zeros))
	return ones, zeros, nil
}
