// Package agestd converts age-grading standards workbooks into normalized
// JSON documents.
package agestd

import "github.com/agegrader/agestd-go/pkg/agestd/parser"

// CategoryRoad is the default standards category recorded in metadata.
const CategoryRoad = "road"

// Options configures conversion behavior.
type Options struct {
	// Category is recorded as meta.category in the output document.
	// Defaults to "road".
	Category string
	// HeaderScanRows caps how many leading rows are scanned when locating
	// a sheet's header row. Defaults to 50.
	HeaderScanRows int
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Category:       CategoryRoad,
		HeaderScanRows: parser.DefaultHeaderScanRows,
	}
}

func (o Options) category() string {
	if o.Category != "" {
		return o.Category
	}
	return CategoryRoad
}

func (o Options) headerScanRows() int {
	if o.HeaderScanRows > 0 {
		return o.HeaderScanRows
	}
	return parser.DefaultHeaderScanRows
}
