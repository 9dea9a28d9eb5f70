package models

import "time"

// Session is the server-held credential pair plus cached user identity for one
// browser. Created at login, token pair rotated on refresh, cleared wholesale at
// logout or unrecoverable auth failure.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"createdAt"`
	LastUsedAt   time.Time `json:"lastUsedAt"`
}
