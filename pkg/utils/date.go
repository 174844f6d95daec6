package utils

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// NewDate builds a calendar date (midnight UTC).
func NewDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) datatypes.Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() datatypes.Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}
