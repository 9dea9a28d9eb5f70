package handlers

import (
	"net/http"

	"staybook/models"
	"staybook/platform"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BrowseHandler serves the search/browse flow's bulk availability lookups.
type BrowseHandler struct {
	Availability *platform.AvailabilityClient
	Logger       *zap.Logger
}

func NewBrowseHandler(availability *platform.AvailabilityClient, logger *zap.Logger) *BrowseHandler {
	return &BrowseHandler{Availability: availability, Logger: logger}
}

// BulkAvailability quotes several rooms at once for the results list.
func (h *BrowseHandler) BulkAvailability(c *gin.Context) {
	var req models.BulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quotes, err := h.Availability.CheckBulk(c.Request.Context(), req)
	if err != nil {
		h.Logger.Debug("bulk availability failed", zap.Error(err))
		// Advisory, same as single quotes: an empty result, not an error.
		c.JSON(http.StatusOK, gin.H{"quotes": []models.AvailabilityQuote{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}
