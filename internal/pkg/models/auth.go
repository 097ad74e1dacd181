package models

// RegisterRequest creates a new customer account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and refresh. The refresh credential
// itself travels in an HttpOnly cookie, never in the body.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	Role        Role   `json:"role"`
	Username    string `json:"username"`
	ExpiresAt   int64  `json:"expires_at"`
}
