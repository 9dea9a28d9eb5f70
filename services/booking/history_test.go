package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/models"

	"go.uber.org/zap"
)

func newHistory(bookings BookingAPI) *DefaultHistoryService {
	return &DefaultHistoryService{
		Bookings: bookings,
		Currency: "VND",
		Logger:   zap.NewNop(),
	}
}

func TestCancelRefetchesList(t *testing.T) {
	bookings := &fakeBookings{
		cancelled: &models.Booking{ID: 3, Status: models.BookingStatusCancelled, RefundAmount: 1_500_000},
		list: []models.Booking{
			{ID: 3, Status: models.BookingStatusCancelled, RefundAmount: 1_500_000},
			{ID: 4, Status: models.BookingStatusConfirmed},
		},
	}
	h := newHistory(bookings)

	out, err := h.Cancel(context.Background(), stubCreds{}, 3)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if bookings.cancelCalls != 1 || bookings.listCalls != 1 {
		t.Fatalf("cancelCalls=%d listCalls=%d, want 1 and 1", bookings.cancelCalls, bookings.listCalls)
	}
	if len(out) != 2 || out[0].RefundAmount != 1_500_000 {
		t.Fatalf("list = %+v, want the server-refetched list", out)
	}
}

func TestCancelFailureSkipsRefetch(t *testing.T) {
	bookings := &fakeBookings{cancelErr: errors.New("boom")}
	h := newHistory(bookings)

	if _, err := h.Cancel(context.Background(), stubCreds{}, 3); err == nil {
		t.Fatal("expected error")
	}
	if bookings.listCalls != 0 {
		t.Fatal("list must not be refetched when cancel failed")
	}
}

func TestRefundPreviewComputesTier(t *testing.T) {
	checkIn := time.Now().Add(72 * time.Hour)
	bookings := &fakeBookings{booking: &models.Booking{
		ID:            8,
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
		CheckInDate:   models.APITime{Time: checkIn},
		TotalPrice:    2_000_000,
	}}
	h := newHistory(bookings)

	bk, quote, err := h.RefundPreview(context.Background(), stubCreds{}, 8)
	if err != nil {
		t.Fatalf("RefundPreview returned error: %v", err)
	}
	if bk.ID != 8 {
		t.Fatalf("booking ID = %d", bk.ID)
	}
	if quote.Percentage != 100 || quote.Amount != 2_000_000 {
		t.Fatalf("quote = %+v, want full refund", quote)
	}
}

func TestRefundPreviewRejectsCancelled(t *testing.T) {
	bookings := &fakeBookings{booking: &models.Booking{ID: 8, Status: models.BookingStatusCancelled}}
	h := newHistory(bookings)

	_, _, err := h.RefundPreview(context.Background(), stubCreds{}, 8)
	var flowErr *FlowError
	if !errors.As(err, &flowErr) {
		t.Fatalf("err = %v, want FlowError", err)
	}
}

func TestPaymentQRGuards(t *testing.T) {
	cases := []struct {
		name    string
		booking *models.Booking
		wantQR  bool
	}{
		{"pending transfer", &models.Booking{ID: 1, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPending, TotalPrice: 3_000_000}, true},
		{"already paid", &models.Booking{ID: 1, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid}, false},
		{"cancelled", &models.Booking{ID: 1, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusPending}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHistory(&fakeBookings{booking: tc.booking})
			_, png, err := h.PaymentQR(context.Background(), stubCreds{}, 1)
			if tc.wantQR {
				if err != nil {
					t.Fatalf("PaymentQR returned error: %v", err)
				}
				if len(png) == 0 {
					t.Fatal("expected a QR image")
				}
				return
			}
			var flowErr *FlowError
			if !errors.As(err, &flowErr) {
				t.Fatalf("err = %v, want FlowError", err)
			}
		})
	}
}

func TestAttestTransferRecordsSelfAttestedPayment(t *testing.T) {
	bookings := &fakeBookings{
		booking: &models.Booking{
			ID:            12,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPending,
			TotalPrice:    3_000_000,
		},
		payment: &models.Payment{ID: 2, Status: "pending"},
	}
	h := newHistory(bookings)

	payment, err := h.AttestTransfer(context.Background(), stubCreds{}, 12)
	if err != nil {
		t.Fatalf("AttestTransfer returned error: %v", err)
	}
	if payment == nil || payment.ID != 2 {
		t.Fatalf("payment = %+v", payment)
	}
	if bookings.lastPay.Amount != 3_000_000 {
		t.Fatalf("attested amount = %v", bookings.lastPay.Amount)
	}
	if attested, _ := bookings.lastPay.Metadata["self_attested"].(bool); !attested {
		t.Fatal("payment must be flagged self_attested")
	}
	if bookings.lastPay.PaymentMethod != models.PaymentMethodTransfer {
		t.Fatalf("method = %s", bookings.lastPay.PaymentMethod)
	}
}

func TestAttestTransferGuards(t *testing.T) {
	cases := []struct {
		name    string
		booking *models.Booking
	}{
		{"cancelled", &models.Booking{ID: 1, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusPending}},
		{"already paid", &models.Booking{ID: 1, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := &fakeBookings{booking: tc.booking}
			h := newHistory(bookings)
			_, err := h.AttestTransfer(context.Background(), stubCreds{}, 1)
			var flowErr *FlowError
			if !errors.As(err, &flowErr) {
				t.Fatalf("err = %v, want FlowError", err)
			}
			if bookings.payCalls != 0 {
				t.Fatal("Pay must not be called when the guard rejects")
			}
		})
	}
}
