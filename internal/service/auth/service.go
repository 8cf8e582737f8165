package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsgrayson/scheduler/internal/domain/auth"
	"github.com/jsgrayson/scheduler/internal/pkg/jwt"
)

type authServiceImpl struct {
	passwordHash string
	jwtService   jwt.Service
}

func NewAuthService(supervisorPasswordHash string, jwtService jwt.Service) auth.Service {
	return &authServiceImpl{
		passwordHash: supervisorPasswordHash,
		jwtService:   jwtService,
	}
}

// Login implements auth.Service: bcrypt-compare against the configured
// supervisor credential, then mint an access token.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken("supervisor")
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
