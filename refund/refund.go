// Package refund maps hours-before-check-in to the fixed refund tiers shown
// in the cancellation dialog.
package refund

import (
	"time"

	"staybook/models"
)

// Tier thresholds in hours before check-in. Both bounds are exclusive:
// exactly 48h falls into the 50% tier, exactly 24h into the 0% tier.
const (
	fullRefundAfterHours = 48
	halfRefundAfterHours = 24
)

// Quote computes the refund preview for cancelling a booking at time now.
// Pure and total; callers must compute it fresh each time the dialog opens,
// since "now" advances.
func Quote(b models.Booking, now time.Time) models.RefundQuote {
	hours := b.CheckInDate.Sub(now).Hours()
	switch {
	case hours > fullRefundAfterHours:
		return models.RefundQuote{Percentage: 100, Amount: b.TotalPrice}
	case hours > halfRefundAfterHours:
		return models.RefundQuote{Percentage: 50, Amount: b.TotalPrice * 0.5}
	default:
		return models.RefundQuote{Percentage: 0, Amount: 0}
	}
}
