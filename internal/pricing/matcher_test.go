package pricing

import (
	"testing"
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestMatches_WindowInclusive(t *testing.T) {
	rule := domain.Rule{
		ID:       "r1",
		Enabled:  true,
		DateFrom: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		day  string
		want bool
	}{
		{"2024-06-09", false},
		{"2024-06-10", true},
		{"2024-06-11", true},
		{"2024-06-12", true},
		{"2024-06-13", false},
	}
	for _, tc := range cases {
		if got := Matches(rule, "std", day(t, tc.day)); got != tc.want {
			t.Errorf("Matches(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestMatches_DisabledNeverMatches(t *testing.T) {
	rule := domain.Rule{
		ID:       "r1",
		Enabled:  false,
		DateFrom: day(t, "2024-06-01"),
		DateTo:   day(t, "2024-06-30"),
	}
	if Matches(rule, "std", day(t, "2024-06-15")) {
		t.Fatal("disabled rule must not match")
	}
}

func TestMatches_AppliesTo(t *testing.T) {
	rule := domain.Rule{
		ID:        "r1",
		Enabled:   true,
		DateFrom:  day(t, "2024-06-01"),
		DateTo:    day(t, "2024-06-30"),
		AppliesTo: []string{"std", "lux"},
	}
	if !Matches(rule, "lux", day(t, "2024-06-15")) {
		t.Error("listed room should match")
	}
	if Matches(rule, "eco", day(t, "2024-06-15")) {
		t.Error("unlisted room should not match")
	}

	// empty applies_to covers every room, including ids the rooms tab
	// does not even have — unmatched references are simply inert
	rule.AppliesTo = nil
	if !Matches(rule, "anything", day(t, "2024-06-15")) {
		t.Error("empty applies_to should match any room")
	}
}

func TestMatches_SingleDayRule(t *testing.T) {
	rule := domain.Rule{
		ID:       "r1",
		Enabled:  true,
		DateFrom: day(t, "2024-07-04"),
		DateTo:   day(t, "2024-07-04"),
	}
	if !Matches(rule, "std", day(t, "2024-07-04")) {
		t.Error("from == to rule should match its single day")
	}
	if Matches(rule, "std", day(t, "2024-07-05")) {
		t.Error("single-day rule should not match the next day")
	}
}

func TestMatches_InvertedWindowNeverMatches(t *testing.T) {
	// from > to is rejected at load time; the matcher must still be safe
	// if one slips through
	rule := domain.Rule{
		ID:       "r1",
		Enabled:  true,
		DateFrom: day(t, "2024-06-10"),
		DateTo:   day(t, "2024-06-01"),
	}
	for _, s := range []string{"2024-06-01", "2024-06-05", "2024-06-10"} {
		if Matches(rule, "std", day(t, s)) {
			t.Errorf("inverted window matched %s", s)
		}
	}
}
