package models

// Booking lifecycle statuses as reported by the platform API.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses of a booking.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Supported payment methods.
const (
	PaymentMethodCard     = "credit_card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "bank_transfer"
)

// Booking is a booking record owned by the platform API. The client never
// recomputes TotalPrice after creation; the server echo is authoritative.
type Booking struct {
	ID              int      `json:"id"`
	UserID          int      `json:"user_id"`
	HotelID         int      `json:"hotel_id"`
	RoomID          int      `json:"room_id"`
	CheckInDate     APITime  `json:"check_in_date"`
	CheckOutDate    APITime  `json:"check_out_date"`
	Guests          int      `json:"guests"`
	TotalPrice      float64  `json:"total_price"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	PaymentMethod   string   `json:"payment_method,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
	CreatedAt       APITime  `json:"created_at"`
	UpdatedAt       APITime  `json:"updated_at"`
	Room            *Room    `json:"room,omitempty"` // Nested by the list endpoint
	CancellationAt  *APITime `json:"cancellation_date,omitempty"`
	RefundAmount    float64  `json:"refund_amount,omitempty"`
}

// BookingCreate is the payload for creating a booking.
type BookingCreate struct {
	HotelID         int    `json:"hotel_id"`
	RoomID          int    `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`  // ISO-8601
	CheckOutDate    string `json:"check_out_date"` // ISO-8601
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}
