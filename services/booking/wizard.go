package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"staybook/models"
	"staybook/platform"
	"staybook/pricing"
	"staybook/utils"

	"go.uber.org/zap"
)

// DefaultWizardService implements WizardService over the platform clients.
type DefaultWizardService struct {
	Rooms        RoomAPI
	Availability AvailabilityAPI
	Bookings     BookingAPI
	Currency     string
	Logger       *zap.Logger
}

// HydrateDraft seeds a draft from the wizard's query parameters
// (checkIn/checkOut/guests), as passed along from the search screen.
func HydrateDraft(query url.Values) models.BookingDraft {
	draft := models.BookingDraft{
		Guests:        1,
		PaymentMethod: models.PaymentMethodCard,
	}
	if v := query.Get("checkIn"); v != "" {
		draft.CheckIn = v
	}
	if v := query.Get("checkOut"); v != "" {
		draft.CheckOut = v
	}
	if v := query.Get("guests"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			draft.Guests = n
		}
	}
	return draft
}

// LoadRoom fetches the room shown at the top of the wizard.
func (w *DefaultWizardService) LoadRoom(ctx context.Context, roomID int) (*models.Room, error) {
	return w.Rooms.GetRoom(ctx, roomID)
}

// Quote checks availability for the current dates. Failures are advisory:
// a nil return tells the caller to keep whatever quote it already shows.
func (w *DefaultWizardService) Quote(ctx context.Context, roomID int, checkIn, checkOut string) *models.AvailabilityQuote {
	in, out, err := parseDateRange(checkIn, checkOut)
	if err != nil {
		return nil
	}
	quote, err := w.Availability.Check(ctx, roomID, isoDate(in), isoDate(out))
	if err != nil {
		w.Logger.Debug("availability check failed",
			zap.Int("roomID", roomID), zap.Error(err))
		return nil
	}
	return quote
}

// Submit runs one submission attempt through the state machine:
// Idle -> Submitting -> (BookingCreated -> PaymentPending -> PaymentConfirmed)
// | BookingRejected | PaymentRejected.
// Rejections come back inside the result with the platform's detail message;
// the returned error is reserved for expired sessions and transport failures.
func (w *DefaultWizardService) Submit(ctx context.Context, creds platform.Credentials, roomID int, draft models.BookingDraft) (*SubmissionResult, error) {
	res := &SubmissionResult{State: StateIdle}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	in, out, err := parseDateRange(draft.CheckIn, draft.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := w.Rooms.GetRoom(ctx, roomID)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, NewValidationError("Room not found")
		}
		return nil, err
	}

	// A fetched quote saying unavailable blocks submission outright. No
	// quote yet is treated as permissive; the platform re-checks under lock
	// on create anyway.
	quote, err := w.Availability.Check(ctx, roomID, isoDate(in), isoDate(out))
	if err != nil {
		w.Logger.Debug("pre-submit availability check failed", zap.Error(err))
		quote = nil
	}
	if quote != nil && !quote.Available {
		return nil, NewUnavailableError()
	}

	nights := pricing.Nights(in, out)
	res.Total = pricing.Total(quote, room, nights)
	res.Savings = pricing.Savings(quote)

	res.State = StateSubmitting
	payload := models.BookingCreate{
		HotelID:         room.HotelID,
		RoomID:          roomID,
		CheckInDate:     isoDate(in),
		CheckOutDate:    isoDate(out),
		Guests:          draft.Guests,
		SpecialRequests: draft.SpecialRequests,
	}

	bk, err := w.Bookings.Create(ctx, creds, payload)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			res.State = StateBookingRejected
			res.Detail = apiErr.Detail
			return res, nil
		}
		return nil, err
	}
	res.Booking = bk
	res.State = StateBookingCreated
	w.Logger.Info("booking created",
		zap.Int("bookingID", bk.ID), zap.Int("roomID", roomID),
		zap.Float64("total", bk.TotalPrice))

	switch draft.PaymentMethod {
	case models.PaymentMethodCash:
		// Pay at the front desk on arrival. No payment call is ever made
		// for cash.
		res.State = StatePaymentConfirmed
		res.Provisional = true

	case models.PaymentMethodCard:
		payment, err := w.Bookings.Pay(ctx, creds, models.PaymentCreate{
			BookingID:     bk.ID,
			Amount:        res.Total,
			Currency:      w.Currency,
			PaymentMethod: models.PaymentMethodCard,
			Metadata: map[string]interface{}{
				"card_last_4": cardLast4(draft.CardNumber),
				"card_name":   draft.CardName,
			},
		})
		if err != nil {
			var apiErr *platform.APIError
			if errors.As(err, &apiErr) {
				// The booking stays pending server-side; no compensating
				// cancellation here, reconciliation is the back-office's.
				res.State = StatePaymentRejected
				res.Detail = apiErr.Detail
				return res, nil
			}
			return nil, err
		}
		res.Payment = payment
		res.State = StatePaymentConfirmed

	case models.PaymentMethodTransfer:
		// The guest transfers against a QR code and self-attests afterwards
		// (AttestTransfer). Success here is provisional until the back
		// office confirms the funds.
		png, err := utils.TransferQR(bk.ID, res.Total, w.Currency)
		if err != nil {
			return nil, err
		}
		res.QRCode = png
		res.State = StatePaymentPending
		res.Provisional = true

	default:
		return nil, NewValidationError(fmt.Sprintf("Unsupported payment method: %s", draft.PaymentMethod))
	}

	return res, nil
}

func validateDraft(d models.BookingDraft) error {
	if d.Name == "" || d.Email == "" || d.Phone == "" || d.CheckIn == "" || d.CheckOut == "" {
		return NewValidationError("Please fill in all required fields")
	}
	if d.Guests < 1 {
		return NewValidationError("At least one guest is required")
	}
	if d.PaymentMethod == models.PaymentMethodCard {
		if d.CardNumber == "" || d.CardName == "" || d.ExpiryDate == "" || d.CVV == "" {
			return NewValidationError("Please fill in all card details")
		}
	}
	return nil
}

// parseDateRange accepts date-only or full ISO-8601 timestamps.
func parseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError("Invalid check-in date")
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, NewValidationError("Invalid check-out date")
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, NewValidationError("Check-out date must be after check-in date")
	}
	return in, out, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func isoDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func cardLast4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
