package handlers

import (
	"net/http"

	"staybook/config"
	"staybook/middleware"
	"staybook/models"
	"staybook/platform"
	"staybook/session"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler owns login, registration and logout.
type AuthHandler struct {
	Auth     *platform.AuthClient
	Sessions *session.Manager
	Logger   *zap.Logger
}

func NewAuthHandler(auth *platform.AuthClient, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions, Logger: logger}
}

// Login exchanges credentials for a platform token pair and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	sid, err := h.Sessions.Create(c.Request.Context(), resp.User, resp.TokenPair)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	setSessionCookie(c, sid)
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

// Register creates a platform account and opens a session right away.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	sid, err := h.Sessions.Create(c.Request.Context(), resp.User, resp.TokenPair)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	setSessionCookie(c, sid)
	c.JSON(http.StatusCreated, gin.H{"user": resp.User})
}

// Logout clears the session wholesale and drops the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(config.AppConfig.SessionCookieName); err == nil && sid != "" {
		if err := h.Sessions.Clear(c.Request.Context(), sid); err != nil {
			h.Logger.Warn("failed to clear session on logout", zap.Error(err))
		}
	}
	dropSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the cached user record for the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	user, exists := c.Get(middleware.UserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
