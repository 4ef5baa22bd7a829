package timegrid

import (
	"math"
	"sort"
	"strings"
)

// FilterSpec maps a column name to the list of accepted string values.
// A column that is missing, or mapped to an empty list, imposes no constraint
// ("select all"). Matching is exact on the trimmed string form, case-sensitive.
type FilterSpec map[string][]string

// ApplyFilters keeps the records that match every constrained column; within a
// column any one of the accepted values matches. A record with no value in a
// constrained column never matches.
func ApplyFilters(records []Record, spec FilterSpec) []Record {
	if len(spec) == 0 {
		return records
	}

	// Drop blank entries from the accepted lists; a list that ends up empty
	// means "all" and is skipped entirely.
	selected := make(map[string][]string, len(spec))
	for col, values := range spec {
		cleaned := make([]string, 0, len(values))
		for _, v := range values {
			if s := strings.TrimSpace(v); s != "" {
				cleaned = append(cleaned, s)
			}
		}
		if len(cleaned) > 0 {
			selected[col] = cleaned
		}
	}
	if len(selected) == 0 {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, selected) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r Record, selected map[string][]string) bool {
	for col, accepted := range selected {
		cell, ok := r[col]
		if !ok || cell == nil {
			return false
		}
		s := strings.TrimSpace(cellString(cell))
		found := false
		for _, want := range accepted {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// DistinctValues collects the distinct non-blank stringified values per column,
// capped at limit per column, sorted case-insensitively. Used to feed the filter
// UI's multi-selects.
func DistinctValues(records []Record, columns []string, limit int) map[string][]string {
	out := make(map[string][]string, len(columns))
	for _, col := range columns {
		seen := make(map[string]struct{})
		for _, r := range records {
			v, ok := r[col]
			if !ok || v == nil {
				continue
			}
			if f, isFloat := v.(float64); isFloat && math.IsNaN(f) {
				continue
			}
			s := strings.TrimSpace(cellString(v))
			if s == "" || strings.EqualFold(s, "nan") {
				continue
			}
			seen[s] = struct{}{}
			if len(seen) >= limit {
				break
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Slice(values, func(i, j int) bool {
			return strings.ToLower(values[i]) < strings.ToLower(values[j])
		})
		out[col] = values
	}
	return out
}

// DistinctDays returns the sorted distinct normalized dates found in the given
// column across all records.
func DistinctDays(records []Record, dateColumn string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if d, ok := NormalizeDate(r[dateColumn]); ok {
			seen[d] = struct{}{}
		}
	}
	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}
