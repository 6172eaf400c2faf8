package fleetbook

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat is the format used to represent a calendar month.
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity.
//
// Records keep their date as a plain string (possibly empty); Date is used
// at the entry boundary to validate and canonicalize what the user typed.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the calendar month containing d.
func (d Date) Month() Month { return Month{y: d.y, m: d.m} }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Month represents a calendar month (e.g. "2025-12").
//
// The zero Month means "no month selected" and matches every record.
type Month struct {
	y int
	m time.Month
}

// ThisMonth returns the current calendar month.
func ThisMonth() Month { return Today().Month() }

// ParseMonth parses a Month from its "YYYY-MM" representation.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, m, _ := on.Date()
	return Month{y: y, m: m}, nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// IsZero returns true if no month is selected.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month as "YYYY-MM". The zero Month formats as "".
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Matches reports whether a record date string belongs to this month.
//
// The match is a plain string-prefix test on the "YYYY-MM-DD" encoding, so
// records with empty or malformed dates never match a selected month. The
// zero Month matches everything.
func (m Month) Matches(date string) bool {
	if m.IsZero() {
		return true
	}
	if date == "" {
		return false
	}
	s := m.String()
	return strings.HasPrefix(date, s+"-") || strings.HasPrefix(date, s)
}
