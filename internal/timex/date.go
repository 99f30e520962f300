package timex

import (
	"time"
)

const (
	// DateLayout is the calendar date format used in URLs and JSON bodies.
	DateLayout = "2006-01-02"
	// MonthLayout is used for planned shipment months.
	MonthLayout = "2006-01"
	// TimestampLayout is the fixed-width UTC form persisted in text columns,
	// so lexical order equals chronological order.
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// FormatTimestamp renders t in UTC with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 (any offset) or a bare YYYY-MM-DD date
// and returns the instant in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) == len(DateLayout) {
		return ParseDate(s)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ParseMonth parses a YYYY-MM month in UTC.
func ParseMonth(s string) (time.Time, error) {
	return time.ParseInLocation(MonthLayout, s, time.UTC)
}

// FormatDate renders t as YYYY/MM/DD, the display format of the web pages.
// The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006/01/02")
}

// FormatDateTime renders t as YYYY/MM/DD HH:MM in the given location.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("2006/01/02 15:04")
}

// FormatMonth turns "2025-03" into "2025/03"; other input is returned as is.
func FormatMonth(s string) string {
	m, err := ParseMonth(s)
	if err != nil {
		return s
	}
	return m.Format("2006/01")
}

// DaysBetween returns whole days from a to b, negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// MonthsBetween returns completed months from a to b.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
