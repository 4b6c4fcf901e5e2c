package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agegrader/agestd-go/pkg/agestd/models"
)

// Sheet name aliases per role, in priority order. Yearly releases rename
// sheets ("AgeStdSec" vs "AgeStanSec") and the 2025 female workbook
// misspells "Factors".
var (
	factorsAliases = []string{"AgeStdFactors", "Age Factors", "Age Facctors"}
	secAliases     = []string{"AgeStdSec", "AgeStanSec"}
	hmsAliases     = []string{"AgeStdHMS", "AgeStanHMS"}
)

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeKey lower-cases s and strips everything non-alphanumeric, so
// Stan/Std variants and stray punctuation still match.
func normalizeKey(s string) string {
	return nonAlnumRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// MissingSheetsError reports roles that matched no sheet in a workbook.
type MissingSheetsError struct {
	Book      string
	Missing   []string
	Available []string
}

func (e *MissingSheetsError) Error() string {
	return fmt.Sprintf("%s: missing sheets %v. Available: %v", e.Book, e.Missing, e.Available)
}

// ResolveSheets maps the factors, sec, and hms roles onto sheet names.
// Each role first tries its known aliases in order against normalized
// sheet names, then falls back to a substring match on the raw lowercase
// name. An unresolved role fails with the available sheet list.
func ResolveSheets(book string, sheets []string) (models.SheetsUsed, error) {
	byNorm := make(map[string]string, len(sheets))
	for _, s := range sheets {
		byNorm[normalizeKey(s)] = s
	}

	pick := func(aliases []string) string {
		for _, a := range aliases {
			if s, ok := byNorm[normalizeKey(a)]; ok {
				return s
			}
		}
		return ""
	}

	used := models.SheetsUsed{
		Factors: pick(factorsAliases),
		Sec:     pick(secAliases),
		HMS:     pick(hmsAliases),
	}

	// Last resort: contains-style matching on the raw names.
	if used.Factors == "" {
		used.Factors = pickContaining(sheets, "factor")
	}
	if used.Sec == "" {
		used.Sec = pickContaining(sheets, "sec")
	}
	if used.HMS == "" {
		used.HMS = pickContaining(sheets, "hms")
	}

	var missing []string
	if used.Factors == "" {
		missing = append(missing, "factors")
	}
	if used.Sec == "" {
		missing = append(missing, "sec")
	}
	if used.HMS == "" {
		missing = append(missing, "hms")
	}
	if len(missing) > 0 {
		return models.SheetsUsed{}, &MissingSheetsError{Book: book, Missing: missing, Available: sheets}
	}
	return used, nil
}

func pickContaining(sheets []string, substr string) string {
	for _, s := range sheets {
		if strings.Contains(strings.ToLower(s), substr) {
			return s
		}
	}
	return ""
}
