package filing

import (
	"fmt"
	"time"
)

const (
	dateFormat     = "20060102"
	dateTimeFormat = "20060102:150405"
)

// ParseDate parses the archive's 8-digit YYYYMMDD date form.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateFormat, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", v, err)
	}
	return t, nil
}

// ParseDateTime parses the archive's YYYYMMDD:HHMMSS timestamp form.
func ParseDateTime(v string) (time.Time, error) {
	t, err := time.Parse(dateTimeFormat, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", v, err)
	}
	return t, nil
}

// ParseBool parses the archive's single-character boolean form. Anything
// other than the literal Y or N is a hard error, never a default.
func ParseBool(v string) (bool, error) {
	switch v {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, fmt.Errorf("parse bool: expected Y or N, got %q", v)
}

// MonthDay is a calendar day without a year, e.g. a fiscal year end.
type MonthDay struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// ParseMonthDay parses the 4-digit MMDD form.
func ParseMonthDay(v string) (MonthDay, error) {
	if len(v) != 4 {
		return MonthDay{}, fmt.Errorf("parse month/day %q: want 4 digits", v)
	}
	var m, d int
	if _, err := fmt.Sscanf(v, "%2d%2d", &m, &d); err != nil {
		return MonthDay{}, fmt.Errorf("parse month/day %q: %w", v, err)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return MonthDay{}, fmt.Errorf("parse month/day %q: out of range", v)
	}
	return MonthDay{Month: time.Month(m), Day: d}, nil
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%s %d", md.Month, md.Day)
}
