package response

import (
	"time"
)

type AuthResponse struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
