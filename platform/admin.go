package platform

import (
	"context"
	"fmt"
	"net/http"

	"staybook/models"

	"golang.org/x/sync/errgroup"
)

// AdminClient proxies the back-office endpoints. All calls use the standard
// refresh-once contract.
type AdminClient struct {
	*Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{Client: c}
}

// AdminUser is a user row in the back-office listing.
type AdminUser struct {
	models.User
	BookingCount int    `json:"booking_count,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// MonthlyRevenue is one month of the revenue report.
type MonthlyRevenue struct {
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// RevenueReport aggregates a year of revenue.
type RevenueReport struct {
	Year         int              `json:"year"`
	TotalRevenue float64          `json:"total_revenue"`
	Monthly      []MonthlyRevenue `json:"monthly"`
}

// TopRoom is a row of the top-rooms report.
type TopRoom struct {
	RoomID       int     `json:"room_id"`
	RoomName     string  `json:"room_name"`
	RoomType     string  `json:"room_type"`
	BasePrice    float64 `json:"base_price"`
	HotelName    string  `json:"hotel_name"`
	BookingCount int     `json:"booking_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// TopCustomer is a row of the top-customers report.
type TopCustomer struct {
	UserID       int     `json:"user_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	BookingCount int     `json:"booking_count"`
	TotalSpent   float64 `json:"total_spent"`
}

// Reports bundles the three report datasets shown on the reports screen.
type Reports struct {
	Revenue      *RevenueReport `json:"revenue"`
	TopRooms     []TopRoom      `json:"top_rooms"`
	TopCustomers []TopCustomer  `json:"top_customers"`
}

// ListUsers returns all platform users.
func (a *AdminClient) ListUsers(ctx context.Context, creds Credentials) ([]AdminUser, error) {
	var users []AdminUser
	if err := a.doAuthed(ctx, creds, http.MethodGet, "/api/admin/users", nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a platform user.
func (a *AdminClient) DeleteUser(ctx context.Context, creds Credentials, userID int) error {
	path := fmt.Sprintf("/api/admin/users/%d", userID)
	return a.doAuthed(ctx, creds, http.MethodDelete, path, nil, nil, true)
}

// ListBookings returns all bookings across users.
func (a *AdminClient) ListBookings(ctx context.Context, creds Credentials) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := a.doAuthed(ctx, creds, http.MethodGet, "/api/admin/bookings", nil, &bookings, true); err != nil {
		return nil, err
	}
	return bookings, nil
}

// DeleteBooking hard-deletes a booking (back-office only).
func (a *AdminClient) DeleteBooking(ctx context.Context, creds Credentials, bookingID int) error {
	path := fmt.Sprintf("/api/admin/bookings/%d", bookingID)
	return a.doAuthed(ctx, creds, http.MethodDelete, path, nil, nil, true)
}

// ConfirmPayment is the authoritative side of the two-tier payment
// confirmation: it flips payment_status to paid after a self-attested
// transfer has been reconciled.
func (a *AdminClient) ConfirmPayment(ctx context.Context, creds Credentials, bookingID int) (*models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/api/admin/bookings/%d/confirm-payment", bookingID)
	if err := a.doAuthed(ctx, creds, http.MethodPatch, path, nil, &booking, true); err != nil {
		return nil, err
	}
	return &booking, nil
}

// FetchReports loads the revenue, top-rooms and top-customers datasets
// concurrently. All-or-nothing: the first failure cancels the rest.
func (a *AdminClient) FetchReports(ctx context.Context, creds Credentials, year, limit int) (*Reports, error) {
	var reports Reports
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		path := fmt.Sprintf("/api/admin/reports/revenue?year=%d", year)
		return a.doAuthed(gctx, creds, http.MethodGet, path, nil, &reports.Revenue, true)
	})
	g.Go(func() error {
		path := fmt.Sprintf("/api/admin/reports/top-rooms?limit=%d", limit)
		return a.doAuthed(gctx, creds, http.MethodGet, path, nil, &reports.TopRooms, true)
	})
	g.Go(func() error {
		path := fmt.Sprintf("/api/admin/reports/top-customers?limit=%d", limit)
		return a.doAuthed(gctx, creds, http.MethodGet, path, nil, &reports.TopCustomers, true)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &reports, nil
}
