package auth

import (
	"errors"

	"github.com/athleteverse/api/internal/user"
)

// Component-level failures. Controllers translate these to fixed HTTP
// statuses; nothing else crosses the boundary.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6,max=72"`
	Location string   `json:"location,omitempty"`
	Sports   []string `json:"sports,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session identity issued at register/login. The
// token itself travels in the auth-token cookie, not the body.
type AuthResponse struct {
	User user.Response `json:"user"`
}
