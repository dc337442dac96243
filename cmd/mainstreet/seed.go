package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"mainstreet/config"
	"mainstreet/internal/domain"
)

// seedAdminUser creates the configured admin account on first boot. An
// existing account or missing configuration is not an error.
func seedAdminUser(logger *slog.Logger, cfg *config.Config, repo domain.AdminUserRepository, hasher domain.PasswordHasher) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("admin seed lookup failed", "err", err)
		return
	}

	salt, err := hasher.GenerateSalt()
	if err != nil {
		logger.Warn("admin seed salt failed", "err", err)
		return
	}
	hash, err := hasher.Hash(salt, cfg.AdminPassword)
	if err != nil {
		logger.Warn("admin seed hash failed", "err", err)
		return
	}
	now := time.Now()
	user := &domain.AdminUser{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		logger.Warn("admin seed create failed", "err", err)
		return
	}
	logger.Info("seeded admin account", "email", email)
}
