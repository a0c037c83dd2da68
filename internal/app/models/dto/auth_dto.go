package dto

import "time"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"300"`
}

// LoginResponse keeps the token at the top level for existing clients
type LoginResponse struct {
	Success   bool          `json:"success" example:"true"`
	Message   string        `json:"message" example:"login successful"`
	Token     string        `json:"token"`
	Data      TokenResponse `json:"data"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewLoginResponse builds a LoginResponse from issued token data
func NewLoginResponse(token *TokenResponse) LoginResponse {
	return LoginResponse{
		Success:   true,
		Message:   "login successful",
		Token:     token.AccessToken,
		Data:      *token,
		Timestamp: time.Now(),
	}
}
