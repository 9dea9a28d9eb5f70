package handlers

import (
	"net/http"
	"strconv"
	"time"

	"staybook/middleware"
	"staybook/platform"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler proxies the back-office screens to the platform admin API.
type AdminHandler struct {
	Admin  *platform.AdminClient
	Logger *zap.Logger
}

func NewAdminHandler(admin *platform.AdminClient, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Admin: admin, Logger: logger}
}

// ListUsers returns all platform users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context(), middleware.Handle(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DeleteUser removes a platform user.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", c.Param("id"))
		return
	}
	if err := h.Admin.DeleteUser(c.Request.Context(), middleware.Handle(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookings returns all bookings across users.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Admin.ListBookings(c.Request.Context(), middleware.Handle(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DeleteBooking hard-deletes a booking.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.Admin.DeleteBooking(c.Request.Context(), middleware.Handle(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmPayment flips a self-attested transfer to paid. This is the
// authoritative confirmation; everything the guest saw before was
// provisional.
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	bk, err := h.Admin.ConfirmPayment(c.Request.Context(), middleware.Handle(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("payment confirmed by back office", zap.Int("bookingID", id))
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// Reports returns the revenue, top-rooms and top-customers datasets,
// fetched jointly.
func (h *AdminHandler) Reports(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Query("year"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid limit", c.Query("limit"))
		return
	}

	reports, err := h.Admin.FetchReports(c.Request.Context(), middleware.Handle(c), year, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
