package dto

import "time"

// ParentLoginRequest carries the parental password for the admin gate.
type ParentLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ParentLoginResponse returns the parent session token.
type ParentLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
