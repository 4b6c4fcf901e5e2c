// Package models defines the normalized output document for age-grading
// standards workbooks.
package models

// SheetsUsed records which workbook sheet was resolved for each role.
type SheetsUsed struct {
	Factors string `json:"factors" validate:"required"`
	Sec     string `json:"sec" validate:"required"`
	HMS     string `json:"hms" validate:"required"`
}

// Meta describes the provenance of one converted workbook.
type Meta struct {
	// Category is the standards category (e.g. "road").
	Category string `json:"category" validate:"required"`
	// Year is an int when the parent directory name is numeric,
	// otherwise the raw directory name.
	Year any `json:"year" validate:"required"`
	// Sex is "M" or "F", inferred from the workbook filename.
	Sex string `json:"sex" validate:"oneof=M F"`
	// SourceFile is the workbook path with forward slashes.
	SourceFile string `json:"source_file" validate:"required"`
	// SheetsUsed maps each role to the resolved sheet name.
	SheetsUsed SheetsUsed `json:"sheets_used"`
}

// StandardsTable holds per-age time standards for a set of events.
// Values are seconds: int64 when whole, float64 when fractional,
// nil when the source cell was empty.
type StandardsTable struct {
	Ages      []int                     `json:"ages"`
	Events    []string                  `json:"events"`
	Standards map[string]map[string]any `json:"standards_seconds"`
}

// FactorsTable holds per-age scaling factors for a set of events.
type FactorsTable struct {
	Ages    []int                     `json:"ages"`
	Events  []string                  `json:"events"`
	Factors map[string]map[string]any `json:"factors"`
}

// Document is the full JSON output for one workbook.
type Document struct {
	Meta    Meta           `json:"meta"`
	Sec     StandardsTable `json:"AgeStdSec"`
	HMS     StandardsTable `json:"AgeStdHMS"`
	Factors FactorsTable   `json:"AgeStdFactors"`
}
