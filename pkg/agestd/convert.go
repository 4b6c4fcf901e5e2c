package agestd

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agegrader/agestd-go/pkg/agestd/models"
	"github.com/agegrader/agestd-go/pkg/agestd/output"
	"github.com/agegrader/agestd-go/pkg/agestd/parser"
)

// ConvertFile converts one standards workbook and writes the JSON document
// next to it, with the extension swapped to .json. It returns the output
// path.
func ConvertFile(path string, opts Options) (string, error) {
	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	book := filepath.Base(path)
	sheets, err := parser.ResolveSheets(book, wb.SheetNames())
	if err != nil {
		return "", err
	}

	secAges, secEvents, secMap, err := extractTable(wb, sheets.Sec, opts, parser.IntIfWhole)
	if err != nil {
		return "", NewConvertError(book, sheets.Sec, err)
	}
	hmsAges, hmsEvents, hmsMap, err := extractTable(wb, sheets.HMS, opts, parser.ToSeconds)
	if err != nil {
		return "", NewConvertError(book, sheets.HMS, err)
	}
	facAges, facEvents, facMap, err := extractTable(wb, sheets.Factors, opts, parser.IntIfWhole)
	if err != nil {
		return "", NewConvertError(book, sheets.Factors, err)
	}

	doc := &models.Document{
		Meta: models.Meta{
			Category:   opts.category(),
			Year:       inferYear(path),
			Sex:        inferSex(path),
			SourceFile: filepath.ToSlash(path),
			SheetsUsed: sheets,
		},
		Sec: models.StandardsTable{
			Ages:      secAges,
			Events:    secEvents,
			Standards: secMap,
		},
		HMS: models.StandardsTable{
			Ages:      hmsAges,
			Events:    hmsEvents,
			Standards: hmsMap,
		},
		Factors: models.FactorsTable{
			Ages:    facAges,
			Events:  facEvents,
			Factors: facMap,
		},
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	if err := output.WriteDocument(outPath, doc); err != nil {
		return "", err
	}
	return outPath, nil
}

func extractTable(wb parser.Workbook, sheet string, opts Options, fn parser.ValueFunc) ([]int, []string, map[string]map[string]any, error) {
	grid, err := wb.Grid(sheet)
	if err != nil {
		return nil, nil, nil, err
	}
	table := parser.TableFromGrid(grid, opts.headerScanRows())
	ageCol, err := parser.FindAgeColumn(table.Columns)
	if err != nil {
		return nil, nil, nil, err
	}
	return parser.AgeEventMap(table, ageCol, fn)
}

// inferYear derives the year from the workbook's immediate parent
// directory, kept as an int when the directory name is numeric.
func inferYear(path string) any {
	year := filepath.Base(filepath.Dir(path))
	if y, err := strconv.Atoi(year); err == nil {
		return y
	}
	return year
}

// inferSex reports "F" when the filename mentions female, "M" otherwise.
func inferSex(path string) string {
	if strings.Contains(strings.ToLower(filepath.Base(path)), "female") {
		return "F"
	}
	return "M"
}
