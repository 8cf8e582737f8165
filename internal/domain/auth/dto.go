package auth

import "github.com/jsgrayson/scheduler/internal/pkg/validator"

// LoginRequest is the supervisor login. The scheduler has a single shared
// supervisor credential; there are no per-user accounts.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if validator.IsEmpty(r.Password) {
		return validator.ValidationErrors{{
			Field:   "password",
			Message: "password is required",
		}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
