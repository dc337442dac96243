package domain

import (
	"context"
	"time"
)

// AdminUser is an account allowed to use the admin CMS.
// swagger:model AdminUser
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// AdminUserRepository defines the interface for admin account storage.
type AdminUserRepository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetByID(ctx context.Context, id string) (*AdminUser, error)
}

// AuthService defines admin authentication. Login issues a bearer token;
// VerifyPasscode is the separate shared-secret gate used by the mobile shell.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *AdminUser, err error)
	// GetAdminByID resolves the account behind a verified token.
	GetAdminByID(ctx context.Context, id string) (*AdminUser, error)
	VerifyPasscode(passcode string) error
}
