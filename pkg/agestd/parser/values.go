package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeRE matches [H:]MM:SS with an optional fractional second.
var timeRE = regexp.MustCompile(`^(?:(\d+):)?(\d+):(\d+(?:\.\d+)?)$`)

// TimeFormatError reports a cell that matched no recognized time shape.
type TimeFormatError struct {
	Value any
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("unrecognized time format: %#v", e.Value)
}

// IntIfWhole converts numeric-ish cells to int64 when they carry no
// fractional part (1225.0 becomes 1225), float64 otherwise, nil for
// missing cells. Non-numeric cells are an error.
func IntIfWhole(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("not a number: %#v", v)
	}
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return int64(f), nil
	}
	return f, nil
}

// ToSeconds converts a time-like cell into seconds. Recognized, in order:
// native durations, clock times and datetimes (seconds since that value's
// own midnight), numeric day fractions (0 < v <= 1, scaled by 86400),
// plain numerics already in seconds, and [H:]MM:SS strings. Anything else
// is a TimeFormatError.
func ToSeconds(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case time.Duration:
		return x.Seconds(), nil
	case time.Time:
		return float64(x.Hour())*3600 + float64(x.Minute())*60 +
			float64(x.Second()) + float64(x.Nanosecond())/1e9, nil
	case int:
		return fractionOrSeconds(float64(x)), nil
	case int64:
		return fractionOrSeconds(float64(x)), nil
	case float64:
		return fractionOrSeconds(x), nil
	case string:
		m := timeRE.FindStringSubmatch(strings.TrimSpace(x))
		if m == nil {
			return nil, &TimeFormatError{Value: v}
		}
		h := 0
		if m[1] != "" {
			h, _ = strconv.Atoi(m[1])
		}
		mm, _ := strconv.Atoi(m[2])
		ss, _ := strconv.ParseFloat(m[3], 64)
		return float64(h)*3600 + float64(mm)*60 + ss, nil
	default:
		return nil, &TimeFormatError{Value: v}
	}
}

// fractionOrSeconds treats values in (0, 1] as Excel day fractions.
func fractionOrSeconds(f float64) float64 {
	if f > 0 && f <= 1 {
		return f * 86400
	}
	return f
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
