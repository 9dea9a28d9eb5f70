package models

// BookingDraft is the in-progress wizard form state. It lives only for the
// duration of a submission request; nothing of it survives a failed attempt.
type BookingDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`  // ISO-8601 date
	CheckOut        string `json:"checkOut"` // ISO-8601 date
	Guests          int    `json:"guests"`
	PaymentMethod   string `json:"paymentMethod"`
	CardNumber      string `json:"cardNumber,omitempty"`
	CardName        string `json:"cardName,omitempty"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	CVV             string `json:"cvv,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}
