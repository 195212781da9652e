package auth

import (
	"github.com/mercie-ux/mkulima-cooperative/internal/users"
	"github.com/shopspring/decimal"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and identity produced by a successful login.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

// RegisterRequest contains the payload required to create a farmer account.
type RegisterRequest struct {
	Name     string           `json:"name" validate:"required,min=2,max=120"`
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=6"`
	FarmSize *decimal.Decimal `json:"farm_size,omitempty"`
}

// RegisterResponse returns the created identity.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`
}
