// Package session owns the server-side browser session: the platform token
// pair plus the cached user record, persisted in redis and keyed by an opaque
// cookie value. All reads, writes and clears of the token pair go through
// Manager; nothing else in the service touches session storage.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staybook/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SessionPrefix = "session:"

// Refresher trades a refresh token for a new token pair. Implemented by
// platform.AuthClient.
type Refresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// Manager is the single owner of session state.
type Manager struct {
	client *redis.Client
	auth   Refresher
	ttl    time.Duration
	logger *zap.Logger
}

func NewManager(client *redis.Client, auth Refresher, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{client: client, auth: auth, ttl: ttl, logger: logger}
}

// Create stores a fresh session and returns its opaque id for the cookie.
func (m *Manager) Create(ctx context.Context, user models.User, tokens models.TokenPair) (string, error) {
	sid := uuid.New().String()
	sess := &models.Session{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
		CreatedAt:    time.Now(),
		LastUsedAt:   time.Now(),
	}
	if err := m.Save(ctx, sid, sess); err != nil {
		return "", err
	}
	return sid, nil
}

// Get loads a session. redis.Nil means the cookie points at nothing.
func (m *Manager) Get(ctx context.Context, sid string) (*models.Session, error) {
	data, err := m.client.Get(ctx, SessionPrefix+sid).Result()
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save persists a session with the configured TTL.
func (m *Manager) Save(ctx context.Context, sid string, sess *models.Session) error {
	sess.LastUsedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := m.client.Set(ctx, SessionPrefix+sid, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes a session wholesale.
func (m *Manager) Clear(ctx context.Context, sid string) error {
	return m.client.Del(ctx, SessionPrefix+sid).Err()
}

// Refresh trades the session's refresh token for a new pair, persists it and
// returns the new access token. On any failure nothing is written: the stored
// session is exactly as it was before the call.
func (m *Manager) Refresh(ctx context.Context, sid string, sess *models.Session) (string, error) {
	pair, err := m.auth.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	sess.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		sess.RefreshToken = pair.RefreshToken
	}
	if err := m.Save(ctx, sid, sess); err != nil {
		return "", err
	}
	m.logger.Debug("session tokens rotated", zap.String("sid", sid))
	return pair.AccessToken, nil
}
