package booking

import (
	"context"

	"staybook/models"
	"staybook/platform"
)

// RoomAPI is the slice of the platform client the wizard needs for rooms.
type RoomAPI interface {
	GetRoom(ctx context.Context, roomID int) (*models.Room, error)
}

// AvailabilityAPI checks room availability and pricing.
type AvailabilityAPI interface {
	Check(ctx context.Context, roomID int, checkIn, checkOut string) (*models.AvailabilityQuote, error)
}

// BookingAPI covers the authenticated booking operations.
type BookingAPI interface {
	Create(ctx context.Context, creds platform.Credentials, payload models.BookingCreate) (*models.Booking, error)
	Pay(ctx context.Context, creds platform.Credentials, req models.PaymentCreate) (*models.Payment, error)
	Cancel(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, error)
	Get(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, error)
	List(ctx context.Context, creds platform.Credentials) ([]models.Booking, error)
}

// WizardService drives the booking-and-payment flow for one room.
type WizardService interface {
	LoadRoom(ctx context.Context, roomID int) (*models.Room, error)
	Quote(ctx context.Context, roomID int, checkIn, checkOut string) *models.AvailabilityQuote
	Submit(ctx context.Context, creds platform.Credentials, roomID int, draft models.BookingDraft) (*SubmissionResult, error)
}

// HistoryService backs the booking-history screen.
type HistoryService interface {
	List(ctx context.Context, creds platform.Credentials) ([]models.Booking, error)
	RefundPreview(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, models.RefundQuote, error)
	Cancel(ctx context.Context, creds platform.Credentials, bookingID int) ([]models.Booking, error)
	PaymentQR(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, []byte, error)
	AttestTransfer(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Payment, error)
}
