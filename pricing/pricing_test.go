package pricing

import (
	"testing"
	"time"

	"staybook/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date("2026-03-01"), date("2026-03-04"), 3},
		{"one night", date("2026-03-01"), date("2026-03-02"), 1},
		{"same day", date("2026-03-01"), date("2026-03-01"), 0},
		{"checkout before checkin", date("2026-03-04"), date("2026-03-01"), 0},
		{"missing checkin", time.Time{}, date("2026-03-04"), 0},
		{"missing checkout", date("2026-03-01"), time.Time{}, 0},
		{"both missing", time.Time{}, time.Time{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Nights(tc.checkIn, tc.checkOut); got != tc.want {
				t.Fatalf("Nights(%v, %v) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
			}
		})
	}
}

func TestNightsCeilsPartialDays(t *testing.T) {
	checkIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	// 1 day 22 hours rounds up to 2 nights.
	if got := Nights(checkIn, checkOut); got != 2 {
		t.Fatalf("Nights = %d, want 2", got)
	}
}

func TestNightsNeverNegative(t *testing.T) {
	base := date("2026-03-10")
	for d := -5; d <= 5; d++ {
		out := base.AddDate(0, 0, d)
		got := Nights(base, out)
		if got < 0 {
			t.Fatalf("Nights(%v, %v) = %d, negative", base, out, got)
		}
		if d <= 0 && got != 0 {
			t.Fatalf("Nights(%v, %v) = %d, want 0", base, out, got)
		}
	}
}

func TestTotalBeforeFirstQuote(t *testing.T) {
	room := &models.Room{BasePrice: 1_000_000}
	// No availability response yet: base price times nights.
	if got := Total(nil, room, 3); got != 3_000_000 {
		t.Fatalf("Total = %v, want 3000000", got)
	}
}

func TestTotalPrefersQuote(t *testing.T) {
	room := &models.Room{BasePrice: 1_000_000}
	quote := &models.AvailabilityQuote{
		Available:           true,
		TotalPrice:          2_700_000,
		TotalBeforeDiscount: 3_000_000,
		DiscountRate:        0.1,
	}
	// The quoted total wins regardless of nights or base price.
	for _, nights := range []int{0, 1, 3, 30} {
		if got := Total(quote, room, nights); got != 2_700_000 {
			t.Fatalf("Total(quote, room, %d) = %v, want 2700000", nights, got)
		}
	}
	if got := Savings(quote); got != 300_000 {
		t.Fatalf("Savings = %v, want 300000", got)
	}
}

func TestTotalFallsBackOnZeroQuote(t *testing.T) {
	room := &models.Room{BasePrice: 500_000}
	quote := &models.AvailabilityQuote{Available: true, TotalPrice: 0}
	if got := Total(quote, room, 2); got != 1_000_000 {
		t.Fatalf("Total = %v, want 1000000", got)
	}
}

func TestTotalWithoutRoom(t *testing.T) {
	if got := Total(nil, nil, 3); got != 0 {
		t.Fatalf("Total = %v, want 0", got)
	}
}

func TestSavingsWithoutDiscount(t *testing.T) {
	cases := []struct {
		name  string
		quote *models.AvailabilityQuote
	}{
		{"nil quote", nil},
		{"no discount rate", &models.AvailabilityQuote{TotalPrice: 100, TotalBeforeDiscount: 120}},
		{"inconsistent totals", &models.AvailabilityQuote{DiscountRate: 0.1, TotalPrice: 120, TotalBeforeDiscount: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Savings(tc.quote); got != 0 {
				t.Fatalf("Savings = %v, want 0", got)
			}
		})
	}
}
