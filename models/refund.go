package models

// RefundQuote is a derived, non-persisted cancellation preview. Computed from
// "now" versus check-in at the moment the cancel dialog opens, never cached.
type RefundQuote struct {
	Percentage int     `json:"percentage"`
	Amount     float64 `json:"amount"`
}
