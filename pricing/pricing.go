// Package pricing holds the pure price calculations behind the booking
// summary panel.
package pricing

import (
	"math"
	"time"

	"staybook/models"
)

// Nights returns the stay length as the ceiling of the date difference in
// whole days. Zero when either date is missing or check-out is not after
// check-in; never negative.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Total returns the displayed total. The platform's quote wins whenever one
// with a positive total is present; otherwise base price times nights keeps
// the summary populated before the first availability response arrives.
// After booking creation the server echo is authoritative, not this.
func Total(quote *models.AvailabilityQuote, room *models.Room, nights int) float64 {
	if quote != nil && quote.TotalPrice > 0 {
		return quote.TotalPrice
	}
	if room == nil {
		return 0
	}
	return room.BasePrice * float64(nights)
}

// Savings returns the discount badge amount: pre-discount total minus the
// quoted total, zero when the quote carries no discount.
func Savings(quote *models.AvailabilityQuote) float64 {
	if quote == nil || quote.DiscountRate <= 0 {
		return 0
	}
	if quote.TotalBeforeDiscount <= quote.TotalPrice {
		return 0
	}
	return quote.TotalBeforeDiscount - quote.TotalPrice
}
