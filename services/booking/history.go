package booking

import (
	"context"
	"time"

	"staybook/models"
	"staybook/platform"
	"staybook/refund"
	"staybook/utils"

	"go.uber.org/zap"
)

// DefaultHistoryService implements HistoryService.
type DefaultHistoryService struct {
	Bookings BookingAPI
	Currency string
	Logger   *zap.Logger
}

// List returns the caller's bookings.
func (h *DefaultHistoryService) List(ctx context.Context, creds platform.Credentials) ([]models.Booking, error) {
	return h.Bookings.List(ctx, creds)
}

// RefundPreview fetches the booking and computes the refund tier for
// cancelling it right now. Called each time the cancel dialog opens.
func (h *DefaultHistoryService) RefundPreview(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, models.RefundQuote, error) {
	bk, err := h.Bookings.Get(ctx, creds, bookingID)
	if err != nil {
		return nil, models.RefundQuote{}, err
	}
	if bk.Status == models.BookingStatusCancelled {
		return nil, models.RefundQuote{}, NewValidationError("Booking is already cancelled")
	}
	return bk, refund.Quote(*bk, time.Now()), nil
}

// Cancel cancels the booking and refetches the full list, so the screen
// always reflects the server-computed refund state. No optimistic patch.
func (h *DefaultHistoryService) Cancel(ctx context.Context, creds platform.Credentials, bookingID int) ([]models.Booking, error) {
	cancelled, err := h.Bookings.Cancel(ctx, creds, bookingID)
	if err != nil {
		return nil, err
	}
	h.Logger.Info("booking cancelled",
		zap.Int("bookingID", cancelled.ID), zap.String("status", cancelled.Status))
	return h.Bookings.List(ctx, creds)
}

// PaymentQR renders the transfer QR for a booking still awaiting payment.
func (h *DefaultHistoryService) PaymentQR(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Booking, []byte, error) {
	bk, err := h.Bookings.Get(ctx, creds, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if bk.Status == models.BookingStatusCancelled {
		return nil, nil, NewValidationError("Booking is cancelled")
	}
	if bk.PaymentStatus != models.PaymentStatusPending {
		return nil, nil, NewValidationError("Booking is already paid")
	}
	png, err := utils.TransferQR(bk.ID, bk.TotalPrice, h.Currency)
	if err != nil {
		return nil, nil, err
	}
	return bk, png, nil
}

// AttestTransfer records the guest's "I have paid" confirmation for a QR
// transfer. This is trust-based: the payment is marked provisional and stays
// so until an admin runs confirm-payment after reconciling the transfer.
func (h *DefaultHistoryService) AttestTransfer(ctx context.Context, creds platform.Credentials, bookingID int) (*models.Payment, error) {
	bk, err := h.Bookings.Get(ctx, creds, bookingID)
	if err != nil {
		return nil, err
	}
	if bk.Status == models.BookingStatusCancelled {
		return nil, NewValidationError("Booking is cancelled")
	}
	if bk.PaymentStatus != models.PaymentStatusPending {
		return nil, NewValidationError("Booking is already paid")
	}

	payment, err := h.Bookings.Pay(ctx, creds, models.PaymentCreate{
		BookingID:     bk.ID,
		Amount:        bk.TotalPrice,
		Currency:      h.Currency,
		PaymentMethod: models.PaymentMethodTransfer,
		Metadata: map[string]interface{}{
			"self_attested": true,
			"attested_at":   time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}
	h.Logger.Info("transfer self-attested, awaiting back-office confirmation",
		zap.Int("bookingID", bk.ID), zap.Float64("amount", bk.TotalPrice))
	return payment, nil
}
