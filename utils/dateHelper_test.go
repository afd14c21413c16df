package utils

import (
	"testing"
	"time"
)

func TestParseDateOrDefault(t *testing.T) {
	def := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2026-03-15", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"", def},
		{"15-03-2026", def},
		{"2026-02-30", def},
	}
	for _, tc := range cases {
		if got := ParseDateOrDefault(tc.value, def); !got.Equal(tc.want) {
			t.Fatalf("ParseDateOrDefault(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2026, time.June, 5, 9, 30, 0, 0, time.UTC)
	got := EndOfDay(in)
	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Fatalf("EndOfDay(%v) = %v", in, got)
	}
	if got.Day() != 5 || got.Month() != time.June {
		t.Fatalf("EndOfDay changed the date: %v", got)
	}
}

func TestYearOrDefault(t *testing.T) {
	current := time.Now().UTC().Year()
	cases := []struct {
		year int
		want int
	}{
		{2023, 2023},
		{1900, 1900},
		{9999, 9999},
		{0, current},
		{1899, current},
		{10000, current},
	}
	for _, tc := range cases {
		if got := YearOrDefault(tc.year); got != tc.want {
			t.Fatalf("YearOrDefault(%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}
