package parser

import (
	"strconv"
	"strings"
)

// ValueFunc converts a raw cell into an output value.
type ValueFunc func(any) (any, error)

// AgeEventMap reshapes a table into an age→event→value mapping. Rows whose
// age cell does not stringify to digits are silently dropped. Every column
// other than ageCol is an event; a surviving row's missing value is stored
// as nil under its age key. Ages come back in row order, not deduplicated.
func AgeEventMap(t *Table, ageCol string, fn ValueFunc) ([]int, []string, map[string]map[string]any, error) {
	ages := []int{}
	var kept []map[string]any
	for _, rec := range t.Records {
		s := strings.TrimSpace(cellString(rec[ageCol]))
		if !isDigits(s) {
			continue
		}
		age, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		ages = append(ages, age)
		kept = append(kept, rec)
	}

	events := []string{}
	for _, c := range t.Columns {
		if c != ageCol {
			events = append(events, c)
		}
	}

	out := make(map[string]map[string]any, len(events))
	for _, event := range events {
		mapping := make(map[string]any, len(kept))
		for i, rec := range kept {
			v, err := fn(rec[event])
			if err != nil {
				return nil, nil, nil, err
			}
			mapping[strconv.Itoa(ages[i])] = v
		}
		out[event] = mapping
	}
	return ages, events, out, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
