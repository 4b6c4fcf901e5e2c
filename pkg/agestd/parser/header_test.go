package parser

import (
	"errors"
	"testing"
)

func TestFindHeaderRow(t *testing.T) {
	grid := Grid{
		{"Road Running Standards 2019"},
		{nil, nil},
		{"Notes", "updated factors"},
		{"Age", "5 km", "10 km"},
		{int64(5), int64(1225), int64(2480)},
	}
	if got := FindHeaderRow(grid, DefaultHeaderScanRows); got != 3 {
		t.Errorf("FindHeaderRow = %d, want 3", got)
	}
}

func TestFindHeaderRowDefaultsToZero(t *testing.T) {
	grid := Grid{
		{"Event", "Seconds"},
		{"5 km", int64(1225)},
	}
	if got := FindHeaderRow(grid, DefaultHeaderScanRows); got != 0 {
		t.Errorf("FindHeaderRow = %d, want 0 when no age cell exists", got)
	}
}

func TestFindHeaderRowRespectsScanLimit(t *testing.T) {
	grid := make(Grid, 4)
	for i := range grid {
		grid[i] = []any{"filler"}
	}
	grid = append(grid, []any{"Age", "5 km"})
	if got := FindHeaderRow(grid, 3); got != 0 {
		t.Errorf("FindHeaderRow = %d, want 0 when header lies past the scan limit", got)
	}
}

func TestTableFromGrid(t *testing.T) {
	grid := Grid{
		{"standards"},
		{"Age", "5  km", nil, "10 km"},
		{int64(5), int64(1225), "x", int64(2480)},
		{int64(6), nil, "x", int64(2470)},
	}
	table := TableFromGrid(grid, DefaultHeaderScanRows)

	want := []string{"Age", "5 km", "10 km"}
	if len(table.Columns) != len(want) {
		t.Fatalf("Columns = %v, want %v", table.Columns, want)
	}
	for i, c := range want {
		if table.Columns[i] != c {
			t.Errorf("Columns[%d] = %q, want %q", i, table.Columns[i], c)
		}
	}

	if len(table.Records) != 2 {
		t.Fatalf("expected 2 body rows, got %d", len(table.Records))
	}
	if table.Records[0]["5 km"] != int64(1225) {
		t.Errorf("Records[0][\"5 km\"] = %v, want 1225", table.Records[0]["5 km"])
	}
	if table.Records[1]["5 km"] != nil {
		t.Errorf("Records[1][\"5 km\"] = %v, want nil", table.Records[1]["5 km"])
	}
}

func TestFindAgeColumn(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		want string
	}{
		{"exact", []string{"Event", "Age"}, "Age"},
		{"suffixed", []string{"Age (years)", "5 km"}, "Age (years)"},
		{"slash", []string{"Age/Yr", "5 km"}, "Age/Yr"},
		{"contains fallback", []string{"Runner Age Group", "5 km"}, "Runner Age Group"},
		{"prefix beats contains", []string{"Percentage", "Age"}, "Age"},
	}

	for _, tt := range tests {
		got, err := FindAgeColumn(tt.cols)
		if err != nil {
			t.Errorf("%s: FindAgeColumn(%v): %v", tt.name, tt.cols, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: FindAgeColumn(%v) = %q, want %q", tt.name, tt.cols, got, tt.want)
		}
	}
}

func TestFindAgeColumnMissing(t *testing.T) {
	_, err := FindAgeColumn([]string{"Event", "Seconds"})
	var ace *AgeColumnError
	if !errors.As(err, &ace) {
		t.Fatalf("expected AgeColumnError, got %v", err)
	}
	if len(ace.Columns) != 2 {
		t.Errorf("Columns = %v, want both reported", ace.Columns)
	}
}
