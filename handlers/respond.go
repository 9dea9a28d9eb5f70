package handlers

import (
	"errors"
	"net/http"

	"staybook/config"
	"staybook/platform"
	booking "staybook/services/booking"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP responses:
// flow/validation rejections -> 400 with the message as-is; expired sessions
// -> 401 with a login redirect and a dropped cookie; platform rejections ->
// the platform's status and detail verbatim; anything else -> 502 with a
// generic retry prompt.
func respondError(c *gin.Context, err error) {
	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": flowErr.Message})
		return
	}

	if errors.Is(err, platform.ErrSessionExpired) {
		dropSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Your session has expired. Please log in again.",
			"redirect": "/login?next=" + c.Request.URL.Path,
		})
		return
	}

	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Detail})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error": "Something went wrong. Please try again.",
	})
}

func setSessionCookie(c *gin.Context, sid string) {
	maxAge := int(config.SessionTTL().Seconds())
	c.SetCookie(config.AppConfig.SessionCookieName, sid, maxAge, "/", "", config.IsProduction(), true)
}

func dropSessionCookie(c *gin.Context) {
	c.SetCookie(config.AppConfig.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
}
