package models

// PaymentCreate is the payload for recording a payment against a booking.
type PaymentCreate struct {
	BookingID     int                    `json:"booking_id"`
	Amount        float64                `json:"amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
	Metadata      map[string]interface{} `json:"payment_metadata,omitempty"`
}

// Payment is the platform's record of a payment.
type Payment struct {
	ID            int                    `json:"id"`
	BookingID     int                    `json:"booking_id"`
	Amount        float64                `json:"amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
	TransactionID string                 `json:"transaction_id,omitempty"`
	Status        string                 `json:"status"`
	Metadata      map[string]interface{} `json:"payment_metadata,omitempty"`
	CreatedAt     APITime                `json:"created_at"`
}
