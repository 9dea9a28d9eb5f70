package models

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the platform's user record as returned by the auth endpoints.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// LoginRequest is the credential payload forwarded to the platform.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new platform account.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// TokenPair is the platform's token response (login, register, refresh).
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// LoginResponse is the platform's login/register answer.
type LoginResponse struct {
	TokenPair
	User User `json:"user"`
}
