package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestOpenWorkbookXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "AgeStdSec"
	f.SetSheetName("Sheet1", sheetName)
	f.SetCellValue(sheetName, "A1", "Age")
	f.SetCellValue(sheetName, "B1", "5 km")
	f.SetCellValue(sheetName, "A2", 5)
	f.SetCellValue(sheetName, "B2", 1225)
	f.SetCellValue(sheetName, "A3", 6)
	f.SetCellValue(sheetName, "B3", 1220.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := OpenWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) != 1 || names[0] != sheetName {
		t.Fatalf("SheetNames = %v, want [%s]", names, sheetName)
	}

	grid, err := wb.Grid(sheetName)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}
	if grid[0][0] != "Age" {
		t.Errorf("grid[0][0] = %v, want \"Age\"", grid[0][0])
	}
	if grid[1][1] != int64(1225) {
		t.Errorf("grid[1][1] = %v (type %T), want int64(1225)", grid[1][1], grid[1][1])
	}
	if grid[2][1] != 1220.5 {
		t.Errorf("grid[2][1] = %v, want 1220.5", grid[2][1])
	}
}

func TestOpenWorkbookUnsupportedExtension(t *testing.T) {
	_, err := OpenWorkbook("standards.csv")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"20:25", "20:25"},
		{"hello", "hello"},
		{"", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"Age", "Age"},
		{int64(5), "5"},
		{5.0, "5"},
		{5.5, "5.5"},
	}

	for _, tt := range tests {
		if got := cellString(tt.input); got != tt.expected {
			t.Errorf("cellString(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
