package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"mainstreet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminUserRepo struct {
	byEmail map[string]*domain.AdminUser
}

func (f *fakeAdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	u.ID = "admin-1"
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeAdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdminUserRepo) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeHasher accepts any password equal to "correct horse".
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Compare(hash, salt, password string) error {
	if password != "correct horse" {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	lastUserID string
}

func (f *fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	f.lastUserID = userID
	return "token-for-" + userID, nil
}

func newTestAuthService(passcode string) (domain.AuthService, *fakeIssuer) {
	repo := &fakeAdminUserRepo{byEmail: map[string]*domain.AdminUser{
		"admin@example.com": {ID: "admin-1", Email: "admin@example.com", Name: "Admin"},
	}}
	issuer := &fakeIssuer{}
	return NewAuthService(repo, fakeHasher{}, issuer, time.Hour, passcode), issuer
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, issuer := newTestAuthService("1234")

		token, user, err := svc.Login(ctx, "Admin@Example.com ", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "token-for-admin-1", token)
		assert.Equal(t, "admin-1", user.ID)
		assert.Equal(t, "admin-1", issuer.lastUserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService("1234")

		_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		svc, _ := newTestAuthService("1234")

		_, _, err := svc.Login(ctx, "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAuthService_VerifyPasscode(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		svc, _ := newTestAuthService("1234")
		assert.NoError(t, svc.VerifyPasscode("1234"))
	})

	t.Run("mismatch", func(t *testing.T) {
		svc, _ := newTestAuthService("1234")
		assert.ErrorIs(t, svc.VerifyPasscode("4321"), domain.ErrUnauthorized)
	})

	t.Run("unconfigured passcode rejects everything", func(t *testing.T) {
		svc, _ := newTestAuthService("")
		assert.ErrorIs(t, svc.VerifyPasscode(""), domain.ErrUnauthorized)
	})
}

func TestAuthService_GetAdminByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService("")

	user, err := svc.GetAdminByID(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	_, err = svc.GetAdminByID(ctx, "admin-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
