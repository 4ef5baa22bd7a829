package timegrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one transportation-request line as uploaded: an arbitrary
// column-name → cell-value mapping. Values are whatever the upload decoder
// produced: string, float64 (JSON / Excel serial number), time.Time or nil.
type Record map[string]any

// Excel serial day 0 is 1899-12-30 (the 1900 date system with its leap bug
// already absorbed).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are the accepted text date formats, in resolution priority order.
var dateLayouts = []string{"02.01.2006", "2006-01-02"}

// NormalizeDate converts a raw cell value to the canonical "YYYY-MM-DD" form.
// Empty, NaN-like and unparseable values yield ok=false; callers treat that as
// "this record does not participate", never as an error.
func NormalizeDate(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return t.Format("2006-01-02"), true
	case float64:
		if math.IsNaN(t) || t <= 0 {
			return "", false
		}
		return excelEpoch.AddDate(0, 0, int(t)).Format("2006-01-02"), true
	case int:
		if t <= 0 {
			return "", false
		}
		return excelEpoch.AddDate(0, 0, t).Format("2006-01-02"), true
	}

	s := strings.TrimSpace(cellString(v))
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), true
		}
	}
	return "", false
}

// NormalizeTime converts a raw cell value to the canonical "HH:MM" form.
// Accepted text forms: "H:MM", "HH:MM", "HH:MM:SS" and "HH:MM ±HH:MM" (the
// timezone suffix is stripped). Native values: time.Time, and Excel serial
// numbers whose fractional part encodes the time of day.
func NormalizeTime(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return t.Format("15:04"), true
	case float64:
		if math.IsNaN(t) || t < 0 {
			return "", false
		}
		frac := t - math.Floor(t)
		m := int(math.Round(frac * 24 * 60))
		if m >= 24*60 {
			m = 0
		}
		return formatMinutes(m), true
	}

	s := strings.TrimSpace(cellString(v))
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	s = stripOffset(s)
	if len(s) == 4 && s[1] == ':' {
		s = "0" + s
	}
	if len(s) >= 8 && s[2] == ':' && s[5] == ':' {
		s = s[:5]
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04"), true
	}
	return "", false
}

// stripOffset removes a trailing " ±HH:MM" timezone suffix.
func stripOffset(s string) string {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s
	}
	rest := strings.TrimSpace(s[i+1:])
	if len(rest) == 6 && (rest[0] == '+' || rest[0] == '-') && rest[3] == ':' {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func formatMinutes(m int) string {
	h := m / 60
	return pad2(h) + ":" + pad2(m%60)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Resolve implements priority-fallback field resolution: it returns the first
// candidate that is not nil, not blank and not a NaN marker, stringified and
// trimmed. ok=false means none of the candidates carried a value.
func Resolve(candidates ...any) (string, bool) {
	for _, v := range candidates {
		if v == nil {
			continue
		}
		if f, isFloat := v.(float64); isFloat && math.IsNaN(f) {
			continue
		}
		s := strings.TrimSpace(cellString(v))
		if s == "" || strings.EqualFold(s, "nan") {
			continue
		}
		return s, true
	}
	return "", false
}

// cellString renders a cell value the way it is matched and displayed:
// floats drop a trailing ".0" so numeric request numbers read as integers.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if math.IsNaN(t) {
			return "nan"
		}
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
