package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"wecamp/internal/auth"
	"wecamp/internal/domain"
	"wecamp/internal/repos"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Issuer
}

// Login verifies the password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", domain.User{}, ErrBadCreds
	}
	tok, err := s.Tokens.Sign(u.ID, u.Role)
	if err != nil {
		return "", domain.User{}, err
	}
	return tok, u, nil
}

// Verify parses a bearer token back into its claims.
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return s.Tokens.Parse(token)
}
