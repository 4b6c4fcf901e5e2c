package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultHeaderScanRows caps the header search depth.
const DefaultHeaderScanRows = 50

var spaceRE = regexp.MustCompile(`\s+`)

// normalizeSpace trims s and collapses internal whitespace runs.
func normalizeSpace(s string) string {
	return spaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FindHeaderRow returns the index of the first row within maxRows whose
// cells include one equal to or starting with "age" (case-insensitive,
// whitespace-stripped). Falls back to row 0.
func FindHeaderRow(g Grid, maxRows int) int {
	if maxRows <= 0 || maxRows > len(g) {
		maxRows = len(g)
	}
	for r := 0; r < maxRows; r++ {
		for _, cell := range g[r] {
			v := strings.ToLower(strings.TrimSpace(cellString(cell)))
			if strings.HasPrefix(v, "age") {
				return r
			}
		}
	}
	return 0
}

// Table is a header-labeled view of a sheet grid.
type Table struct {
	// Columns holds the normalized header names in sheet order.
	// Columns normalizing to the same name appear once per occurrence
	// here but collide in Records (last wins).
	Columns []string
	// Records holds one name→value map per body row.
	Records []map[string]any
}

// TableFromGrid detects the header row within maxScan rows and reshapes
// everything below it into labeled records. Columns with an empty header
// cell are dropped.
func TableFromGrid(g Grid, maxScan int) *Table {
	t := &Table{Columns: []string{}}
	if len(g) == 0 {
		return t
	}

	hdr := FindHeaderRow(g, maxScan)
	colIdx := make([]int, 0, len(g[hdr]))
	for i, cell := range g[hdr] {
		name := normalizeSpace(cellString(cell))
		if name == "" {
			continue
		}
		t.Columns = append(t.Columns, name)
		colIdx = append(colIdx, i)
	}

	for _, row := range g[hdr+1:] {
		rec := make(map[string]any, len(t.Columns))
		for j, name := range t.Columns {
			if colIdx[j] < len(row) {
				rec[name] = row[colIdx[j]]
			} else {
				rec[name] = nil
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t
}

// AgeColumnError reports that no column name matched the age heuristics.
type AgeColumnError struct {
	Columns []string
}

func (e *AgeColumnError) Error() string {
	return fmt.Sprintf("could not locate Age column. Columns: %v", e.Columns)
}

// FindAgeColumn picks the age column from cols: prefer a name equal to
// "age" or starting with "age" plus a separator, then any name containing
// "age" anywhere.
func FindAgeColumn(cols []string) (string, error) {
	for _, c := range cols {
		cl := strings.ToLower(strings.TrimSpace(c))
		if cl == "age" ||
			strings.HasPrefix(cl, "age ") ||
			strings.HasPrefix(cl, "age(") ||
			strings.HasPrefix(cl, "age/") ||
			strings.HasPrefix(cl, "age-") {
			return c, nil
		}
	}
	for _, c := range cols {
		if strings.Contains(strings.ToLower(c), "age") {
			return c, nil
		}
	}
	return "", &AgeColumnError{Columns: cols}
}
