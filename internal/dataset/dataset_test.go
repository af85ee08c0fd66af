package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "birthwt.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, want := table.NumRows(), 12; got != want {
		t.Errorf("NumRows = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]string{"bwt", "smoke", "age", "lwt"}, table.Columns()); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}

	bwt, err := table.Column("bwt")
	if err != nil {
		t.Fatalf("Column(bwt) failed: %v", err)
	}
	if bwt[0] != 2523 || bwt[11] != 2751 {
		t.Errorf("unexpected bwt values: first %v, last %v", bwt[0], bwt[11])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Missing", filepath.Join("testdata", "nope.txt")},
		{"Malformed", filepath.Join("testdata", "malformed.txt")},
		{"Ragged", filepath.Join("testdata", "ragged.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Errorf("Load(%s) should fail", tt.path)
			}
		})
	}
}

func TestColumnMissing(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "birthwt.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	_, err = table.Column("height")
	if !errors.Is(err, ErrNoSuchColumn) {
		t.Errorf("error = %v, want ErrNoSuchColumn", err)
	}
}

func TestSplitBy(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "birthwt.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	smokers, nonsmokers, err := table.SplitBy("bwt", "smoke")
	if err != nil {
		t.Fatalf("SplitBy failed: %v", err)
	}
	if len(smokers)+len(nonsmokers) != table.NumRows() {
		t.Errorf("split lost rows: %d + %d != %d", len(smokers), len(nonsmokers), table.NumRows())
	}
	if len(smokers) != 6 || len(nonsmokers) != 6 {
		t.Errorf("split sizes = %d/%d, want 6/6", len(smokers), len(nonsmokers))
	}
	// First smoker row in the fixture is bwt 2557.
	if smokers[0] != 2557 {
		t.Errorf("smokers[0] = %v, want 2557", smokers[0])
	}
}

func TestColumnReturnsCopy(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "birthwt.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	a, _ := table.Column("bwt")
	a[0] = -1
	b, _ := table.Column("bwt")
	if b[0] == -1 {
		t.Error("Column should return a copy, not the backing slice")
	}
}
