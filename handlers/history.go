package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"staybook/middleware"
	booking "staybook/services/booking"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler serves the booking-history screen.
type HistoryHandler struct {
	History booking.HistoryService
	Logger  *zap.Logger
}

func NewHistoryHandler(history booking.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{History: history, Logger: logger}
}

func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id", c.Param("id"))
		return 0, false
	}
	return id, true
}

// List returns the caller's bookings.
func (h *HistoryHandler) List(c *gin.Context) {
	handle := middleware.Handle(c)
	bookings, err := h.History.List(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// RefundPreview powers the cancel-confirmation dialog: the booking plus the
// refund tier computed at this instant.
func (h *HistoryHandler) RefundPreview(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	handle := middleware.Handle(c)
	bk, quote, err := h.History.RefundPreview(c.Request.Context(), handle, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk, "refund": quote})
}

// Cancel cancels the booking and returns the freshly refetched list.
func (h *HistoryHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	handle := middleware.Handle(c)
	bookings, err := h.History.Cancel(c.Request.Context(), handle, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// PaymentQR returns the transfer QR for a payment-pending booking.
func (h *HistoryHandler) PaymentQR(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	handle := middleware.Handle(c)
	bk, png, err := h.History.PaymentQR(c.Request.Context(), handle, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": bk,
		"qrCode":  base64.StdEncoding.EncodeToString(png),
	})
}

// AttestPayment records the guest's self-attested transfer confirmation.
// The response is explicitly provisional: payment_status stays pending until
// the back office confirms the funds.
func (h *HistoryHandler) AttestPayment(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	handle := middleware.Handle(c)
	payment, err := h.History.AttestTransfer(c.Request.Context(), handle, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("payment self-attested", zap.Int("bookingID", id))
	c.JSON(http.StatusOK, gin.H{
		"payment":     payment,
		"provisional": true,
		"message":     "Thank you. Your transfer will be verified by our staff shortly.",
	})
}
