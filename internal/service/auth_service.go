// Package service orchestrates storage, authentication, and the calculator
// into the operations the HTTP handlers expose.
package service

import (
	"context"
	"log/slog"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/models"
)

// AuthService handles member registration and login, issuing session tokens.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	tokens        *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(authenticator *auth.PasswordAuthenticator, tokens *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, tokens: tokens}
}

// Register creates a new member account and returns it with a session token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Member, string, error) {
	member, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(member)
	if err != nil {
		return nil, "", err
	}

	slog.Info("member registered", "member_id", member.ID)
	return member, token, nil
}

// Login authenticates a member and returns a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Member, string, error) {
	member, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(member)
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}
