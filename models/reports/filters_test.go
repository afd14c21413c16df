package reports

import (
	"testing"
	"time"
)

func TestDateRangeFilterDefaults(t *testing.T) {
	before := time.Now().UTC()
	from, to := DateRangeFilter{}.Range()

	wantFrom := time.Date(before.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) {
		t.Fatalf("default from = %v, want %v", from, wantFrom)
	}
	if to.Before(before) {
		t.Fatalf("default to = %v, want >= %v", to, before)
	}
}

func TestDateRangeFilterBadValuesDegrade(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"garbage", "not-a-date", "also-not"},
		{"wrong layout", "01/02/2026", "02/03/2026"},
		{"out of range day", "2026-02-30", "2026-13-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := DateRangeFilter{StartDate: tc.start, EndDate: tc.end}.Range()
			defFrom, _ := DateRangeFilter{}.Range()
			if !from.Equal(defFrom) {
				t.Fatalf("from = %v, want default %v", from, defFrom)
			}
			if to.After(time.Now().UTC().Add(time.Minute)) {
				t.Fatalf("to = %v, want about now", to)
			}
		})
	}
}

func TestDateRangeFilterExplicitRange(t *testing.T) {
	from, to := DateRangeFilter{StartDate: "2025-11-01", EndDate: "2025-11-30"}.Range()
	if from.Day() != 1 || from.Month() != time.November || from.Year() != 2025 {
		t.Fatalf("from = %v, want 2025-11-01", from)
	}
	if to.Day() != 30 || to.Hour() != 23 || to.Minute() != 59 || to.Second() != 59 {
		t.Fatalf("to = %v, want end of 2025-11-30", to)
	}
}

func TestDepartmentalOverheadFilterYear(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2024, 2024},
		{0, time.Now().UTC().Year()},
		{-3, time.Now().UTC().Year()},
		{12345, time.Now().UTC().Year()},
	}
	for _, tc := range cases {
		year, from, to := DepartmentalOverheadFilter{Year: tc.year}.CalendarYear()
		if year != tc.want {
			t.Fatalf("CalendarYear(%d) year = %d, want %d", tc.year, year, tc.want)
		}
		if from.Year() != tc.want || to.Year() != tc.want {
			t.Fatalf("CalendarYear(%d) bounds = %v..%v, want within %d", tc.year, from, to, tc.want)
		}
	}
}

func TestInventoryValuationFilterAsOf(t *testing.T) {
	if asOf := (InventoryValuationFilter{}).AsOf(); asOf != nil {
		t.Fatalf("empty as_of_date = %v, want nil", asOf)
	}
	if asOf := (InventoryValuationFilter{AsOfDate: "bogus"}).AsOf(); asOf != nil {
		t.Fatalf("bad as_of_date = %v, want nil", asOf)
	}

	asOf := (InventoryValuationFilter{AsOfDate: "2026-06-15"}).AsOf()
	if asOf == nil {
		t.Fatalf("valid as_of_date returned nil")
	}
	if asOf.Day() != 15 || asOf.Hour() != 23 {
		t.Fatalf("as_of = %v, want end of 2026-06-15", asOf)
	}
}
