// Package parser reads spreadsheet grids and locates age-grading standards
// tables inside inconsistently formatted sheets.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yamitzky/xlrd-go/xlrd"
)

// ErrUnsupportedFormat indicates the workbook extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// Grid holds one sheet's cell values in row-major order. Empty cells are
// nil, numeric cells int64 or float64, everything else string.
type Grid [][]any

// Workbook reads sheet grids from a spreadsheet file.
type Workbook interface {
	// SheetNames returns the workbook's sheet names in file order.
	SheetNames() []string
	// Grid returns the named sheet's cells.
	Grid(sheet string) (Grid, error)
	Close() error
}

// OpenWorkbook opens path with the reader matching its extension:
// excelize for .xlsx/.xlsm, xlrd for legacy .xls.
func OpenWorkbook(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		return &xlsxWorkbook{f: f}, nil
	case ".xls":
		book, err := xlrd.OpenWorkbook(path, nil)
		if err != nil {
			return nil, err
		}
		return &xlsWorkbook{book: book}, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// xlsxWorkbook reads OOXML workbooks via excelize. Grids are read with raw
// cell values so date/time cells surface as Excel day-fraction serials.
type xlsxWorkbook struct {
	f *excelize.File
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Grid(sheet string) (Grid, error) {
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]any, len(row))
		for colIdx, raw := range row {
			cells[colIdx] = parseValue(raw)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

// xlsWorkbook reads legacy BIFF workbooks via xlrd.
type xlsWorkbook struct {
	book *xlrd.Book
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.book.SheetNames()
}

func (w *xlsWorkbook) Grid(sheetName string) (Grid, error) {
	sheet, err := w.book.SheetByName(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(Grid, sheet.NRows)
	for rowIdx := 0; rowIdx < sheet.NRows; rowIdx++ {
		cells := make([]any, sheet.NCols)
		for colIdx := 0; colIdx < sheet.NCols; colIdx++ {
			switch sheet.CellType(rowIdx, colIdx) {
			case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK, xlrd.XL_CELL_ERROR:
				cells[colIdx] = nil
			default:
				cells[colIdx] = sheet.CellValue(rowIdx, colIdx)
			}
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

func (w *xlsWorkbook) Close() error {
	w.book.ReleaseResources()
	return nil
}

// parseValue attempts to parse a raw cell string as a number.
// Returns nil for empty cells, int64 for integers, float64 for decimals,
// or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// cellString renders a cell value the way it would appear in the sheet.
// Whole floats render without a fractional part, so a numeric age cell
// still passes the digit check.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
