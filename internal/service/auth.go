package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/estate-listings/internal/server"
)

// AuthService configures Clerk, which guards the management routes.
type AuthService struct {
	server *server.Server
}

// NewAuthService sets the process-wide Clerk secret key.
func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
