package platform

import (
	"context"
	"errors"
	"net/http"

	"staybook/models"
)

// AuthClient talks to the platform auth endpoints.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

// Login exchanges credentials for a token pair plus the user record.
func (a *AuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a platform account and returns the initial token pair.
func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshToken trades a refresh token for a new token pair. Any failure
// (network, non-2xx, empty token) yields an error and no usable pair.
func (a *AuthClient) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.New("no refresh token")
	}
	body := map[string]string{"refresh_token": refreshToken}
	var pair models.TokenPair
	if err := a.do(ctx, http.MethodPost, "/api/auth/refresh", body, &pair); err != nil {
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, errors.New("refresh response missing access token")
	}
	return &pair, nil
}
