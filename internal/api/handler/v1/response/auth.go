package response

import "github.com/globetrotter/api/internal/domain"

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
