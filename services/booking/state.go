package booking

import "staybook/models"

// SubmissionState tracks a single booking submission attempt through the
// create-then-pay flow. Terminal states are PaymentConfirmed,
// BookingRejected and PaymentRejected.
type SubmissionState string

const (
	StateIdle             SubmissionState = "idle"
	StateSubmitting       SubmissionState = "submitting"
	StateBookingCreated   SubmissionState = "booking_created"
	StatePaymentPending   SubmissionState = "payment_pending"
	StatePaymentConfirmed SubmissionState = "payment_confirmed"
	StateBookingRejected  SubmissionState = "booking_rejected"
	StatePaymentRejected  SubmissionState = "payment_rejected"
)

// Terminal reports whether the attempt is finished, successfully or not.
func (s SubmissionState) Terminal() bool {
	switch s {
	case StatePaymentConfirmed, StateBookingRejected, StatePaymentRejected:
		return true
	}
	return false
}

// SubmissionResult is the outcome of one submission attempt. When the state
// is a rejection, Detail carries the platform's message verbatim and the form
// stays editable client-side. Provisional marks success screens whose payment
// still awaits back-office confirmation (cash at desk, self-attested
// transfer).
type SubmissionResult struct {
	State       SubmissionState `json:"state"`
	Booking     *models.Booking `json:"booking,omitempty"`
	Payment     *models.Payment `json:"payment,omitempty"`
	Detail      string          `json:"detail,omitempty"`
	Provisional bool            `json:"provisional,omitempty"`
	QRCode      []byte          `json:"qrCode,omitempty"`
	Total       float64         `json:"total"`
	Savings     float64         `json:"savings,omitempty"`
}
