package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"mainstreet/internal/domain"
)

type authService struct {
	userRepo      domain.AdminUserRepository
	hasher        domain.PasswordHasher
	issuer        domain.TokenIssuer
	tokenExpiry   time.Duration
	adminPasscode string
}

func NewAuthService(userRepo domain.AdminUserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration, adminPasscode string) domain.AuthService {
	return &authService{
		userRepo:      userRepo,
		hasher:        hasher,
		issuer:        issuer,
		tokenExpiry:   tokenExpiry,
		adminPasscode: adminPasscode,
	}
}

// Login verifies credentials and issues a bearer token. Bad email and bad
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("get admin user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) GetAdminByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return user, nil
}

// VerifyPasscode checks the shared admin passcode in constant time. When no
// passcode is configured the gate rejects everything.
func (s *authService) VerifyPasscode(passcode string) error {
	if s.adminPasscode == "" {
		return domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.adminPasscode)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
