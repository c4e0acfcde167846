package filing

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("19991231")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("date = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "1999123", "19991341", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("20070312:174523")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2007, time.March, 12, 17, 45, 23, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got, want)
	}

	if _, err := ParseDateTime("20070312 174523"); err == nil {
		t.Error("timestamp without colon separator succeeded, want error")
	}
}

func TestParseBool(t *testing.T) {
	if v, err := ParseBool("Y"); err != nil || !v {
		t.Errorf("ParseBool(Y) = %v, %v", v, err)
	}
	if v, err := ParseBool("N"); err != nil || v {
		t.Errorf("ParseBool(N) = %v, %v", v, err)
	}
	// Anything but the two literals is a hard error, never a default.
	for _, bad := range []string{"", "y", "n", "yes", "true", "1"} {
		if _, err := ParseBool(bad); err == nil {
			t.Errorf("ParseBool(%q) succeeded, want error", bad)
		}
	}
}

func TestParseMonthDay(t *testing.T) {
	got, err := ParseMonthDay("1231")
	if err != nil {
		t.Fatalf("ParseMonthDay: %v", err)
	}
	if got.Month != time.December || got.Day != 31 {
		t.Errorf("got %v, want December 31", got)
	}

	for _, bad := range []string{"", "123", "12315", "1332", "0000", "ABCD"} {
		if _, err := ParseMonthDay(bad); err == nil {
			t.Errorf("ParseMonthDay(%q) succeeded, want error", bad)
		}
	}
}
