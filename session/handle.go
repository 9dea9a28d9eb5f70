package session

import (
	"context"
	"time"

	"staybook/models"
	"staybook/platform"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// Handle binds one request to its session. It implements
// platform.Credentials so the networking layer can refresh and invalidate
// without knowing about cookies or redis.
type Handle struct {
	sid  string
	sess *models.Session
	mgr  *Manager
}

// Handle wraps a loaded session for use during one request.
func (m *Manager) Handle(sid string, sess *models.Session) *Handle {
	return &Handle{sid: sid, sess: sess, mgr: m}
}

func (h *Handle) SID() string { return h.sid }

func (h *Handle) User() models.User { return h.sess.User }

func (h *Handle) AccessToken() string { return h.sess.AccessToken }

// Refresh performs one silent token refresh. Failure clears the session and
// reports it expired; the caller's only recovery is a new login.
func (h *Handle) Refresh(ctx context.Context) (string, error) {
	token, err := h.mgr.Refresh(ctx, h.sid, h.sess)
	if err != nil {
		h.mgr.logger.Info("silent refresh failed, clearing session",
			zap.String("sid", h.sid), zap.Error(err))
		h.Invalidate(ctx)
		return "", platform.ErrSessionExpired
	}
	return token, nil
}

// Invalidate clears the session wholesale.
func (h *Handle) Invalidate(ctx context.Context) {
	if err := h.mgr.Clear(ctx, h.sid); err != nil {
		h.mgr.logger.Warn("failed to clear session", zap.String("sid", h.sid), zap.Error(err))
	}
}

// EnsureFresh refreshes proactively when the access token's exp claim falls
// within skew. The token is parsed unverified: this service does not hold the
// platform's signing secret, and a forged exp only costs us a wasted refresh
// round-trip that the platform will reject. Best-effort: a failed proactive
// refresh keeps the session, the reactive 401 path decides its fate.
func (h *Handle) EnsureFresh(ctx context.Context, skew time.Duration) {
	exp, ok := tokenExpiry(h.sess.AccessToken)
	if !ok {
		return
	}
	if time.Until(exp) > skew {
		return
	}
	if _, err := h.mgr.Refresh(ctx, h.sid, h.sess); err != nil {
		h.mgr.logger.Debug("proactive refresh failed", zap.String("sid", h.sid), zap.Error(err))
	}
}

// tokenExpiry extracts the exp claim from a JWT without verifying it.
func tokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
