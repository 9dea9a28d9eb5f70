package handlers

import (
	"net/http"
	"strconv"

	"staybook/middleware"
	"staybook/models"
	booking "staybook/services/booking"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler serves the booking-and-payment wizard.
type WizardHandler struct {
	Wizard booking.WizardService
	Logger *zap.Logger
}

func NewWizardHandler(wizard booking.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Wizard: wizard, Logger: logger}
}

// StartWizard returns the room plus a draft hydrated from the query
// parameters handed over by the search screen.
func (h *WizardHandler) StartWizard(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", c.Param("roomId"))
		return
	}

	room, err := h.Wizard.LoadRoom(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	draft := booking.HydrateDraft(c.Request.URL.Query())
	quote := h.Wizard.Quote(c.Request.Context(), roomID, draft.CheckIn, draft.CheckOut)

	c.JSON(http.StatusOK, gin.H{
		"room":  room,
		"draft": draft,
		"quote": quote,
	})
}

// CheckAvailability re-quotes on every date change. Failures return a null
// quote; the client keeps whatever it already shows (availability is
// advisory until submission).
func (h *WizardHandler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Query("room_id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", c.Query("room_id"))
		return
	}
	quote := h.Wizard.Quote(c.Request.Context(), roomID, c.Query("check_in_date"), c.Query("check_out_date"))
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// Submit runs one booking submission attempt. Rejections come back with the
// platform's detail so the form stays editable with an explanation.
func (h *WizardHandler) Submit(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id", c.Param("roomId"))
		return
	}

	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	handle := middleware.Handle(c)
	if handle == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to book"})
		return
	}

	res, err := h.Wizard.Submit(c.Request.Context(), handle, roomID, draft)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.State == booking.StateBookingRejected || res.State == booking.StatePaymentRejected {
		h.Logger.Info("submission rejected",
			zap.String("state", string(res.State)), zap.String("detail", res.Detail))
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
