package fleetbook

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-01-05", NewDate(2025, time.January, 5), false},
		{"2025-1-5", NewDate(2025, time.January, 5), false},
		{"2025-13-01", Date{}, true},
		{"05/01/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2025, time.January, 5).String(); got != "2025-01-05" {
		t.Errorf("String() = %q, want 2025-01-05", got)
	}
}

func TestParseMonth(t *testing.T) {
	if _, err := ParseMonth("2025-01"); err != nil {
		t.Errorf("ParseMonth(2025-01) error = %v", err)
	}
	if _, err := ParseMonth("2025"); err == nil {
		t.Error("ParseMonth(2025) should fail")
	}
	if _, err := ParseMonth("gennaio"); err == nil {
		t.Error("ParseMonth(gennaio) should fail")
	}
}

func TestMonth_Matches(t *testing.T) {
	jan := MustParseMonth("2025-01")
	testCases := []struct {
		name  string
		month Month
		date  string
		want  bool
	}{
		{"date in month", jan, "2025-01-05", true},
		{"other month", jan, "2025-02-05", false},
		{"other year", jan, "2024-01-05", false},
		{"empty date never matches a month", jan, "", false},
		{"zero month matches everything", Month{}, "2025-07-01", true},
		{"zero month matches empty date", Month{}, "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.month.Matches(tc.date); got != tc.want {
				t.Errorf("%v.Matches(%q) = %v, want %v", tc.month, tc.date, got, tc.want)
			}
		})
	}
}

func TestDate_Month(t *testing.T) {
	d := NewDate(2025, time.March, 15)
	if got := d.Month().String(); got != "2025-03" {
		t.Errorf("Month() = %q, want 2025-03", got)
	}
}
