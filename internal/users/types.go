package users

import "github.com/tennisconnect/server/internal/models"

// RegisterRequest represents the data needed to create an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the credentials presented at login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed bearer token and the account it identifies
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
