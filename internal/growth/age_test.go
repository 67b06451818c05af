package growth

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonthsCalendarAware(t *testing.T) {
	dob := date(2024, time.January, 20)

	if got := AgeInMonths(dob, date(2024, time.February, 19)); got != 0 {
		t.Fatalf("day before the 20th: expected 0 months, got %d", got)
	}
	if got := AgeInMonths(dob, date(2024, time.February, 20)); got != 1 {
		t.Fatalf("on the 20th: expected 1 month, got %d", got)
	}
	if got := AgeInMonths(dob, date(2025, time.January, 20)); got != 12 {
		t.Fatalf("one year later: expected 12 months, got %d", got)
	}
	// Before birth comes out negative; the selector turns it into an error.
	if got := AgeInMonths(dob, date(2024, time.January, 5)); got >= 0 {
		t.Fatalf("before birth: expected negative months, got %d", got)
	}
}

func TestAgeInWeeksFloors(t *testing.T) {
	dob := date(2024, time.March, 1)

	if got := AgeInWeeks(dob, dob.Add(6*24*time.Hour)); got != 0 {
		t.Fatalf("6 days: expected 0 weeks, got %d", got)
	}
	if got := AgeInWeeks(dob, dob.Add(7*24*time.Hour)); got != 1 {
		t.Fatalf("7 days: expected 1 week, got %d", got)
	}
	if got := AgeInWeeks(dob, dob.Add(13*24*time.Hour+23*time.Hour)); got != 1 {
		t.Fatalf("13 days 23 hours: expected 1 week, got %d", got)
	}
	if got := AgeInWeeks(dob, dob.Add(-time.Hour)); got != -1 {
		t.Fatalf("before birth: expected -1, got %d", got)
	}
}
