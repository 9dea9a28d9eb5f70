package platform

import (
	"context"
	"fmt"
	"net/http"

	"staybook/models"
)

// BookingClient performs the authenticated booking operations. Create, Pay
// and Cancel recover once from an expired access token via a silent refresh;
// List does not (see doAuthed).
type BookingClient struct {
	*Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{Client: c}
}

// Create records a new booking. The server computes and echoes the
// authoritative total price.
func (b *BookingClient) Create(ctx context.Context, creds Credentials, payload models.BookingCreate) (*models.Booking, error) {
	var booking models.Booking
	if err := b.doAuthed(ctx, creds, http.MethodPost, "/api/bookings/", payload, &booking, true); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Pay records a payment for a booking. Never called for cash bookings.
func (b *BookingClient) Pay(ctx context.Context, creds Credentials, req models.PaymentCreate) (*models.Payment, error) {
	var payment models.Payment
	if err := b.doAuthed(ctx, creds, http.MethodPost, "/api/bookings/payment", req, &payment, true); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Cancel cancels a booking. Idempotency of repeated cancels is the server's
// concern; we surface whatever status comes back.
func (b *BookingClient) Cancel(ctx context.Context, creds Credentials, bookingID int) (*models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/api/bookings/%d/cancel", bookingID)
	if err := b.doAuthed(ctx, creds, http.MethodPatch, path, nil, &booking, true); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Get fetches one of the caller's bookings.
func (b *BookingClient) Get(ctx context.Context, creds Credentials, bookingID int) (*models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/api/bookings/%d", bookingID)
	if err := b.doAuthed(ctx, creds, http.MethodGet, path, nil, &booking, true); err != nil {
		return nil, err
	}
	return &booking, nil
}

// List fetches all of the caller's bookings. A bare 401 here clears the
// session with no retry.
func (b *BookingClient) List(ctx context.Context, creds Credentials) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := b.doAuthed(ctx, creds, http.MethodGet, "/api/bookings/", nil, &bookings, false); err != nil {
		return nil, err
	}
	return bookings, nil
}
