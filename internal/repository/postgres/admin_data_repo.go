package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mainstreet/internal/domain"
)

type adminDataRepository struct {
	DB *sql.DB
}

func NewAdminDataRepository(db *sql.DB) domain.AdminDataRepository {
	return &adminDataRepository{DB: db}
}

// The admin document is a single row; both arrays live in jsonb columns so a
// save is one atomic statement.
func (r *adminDataRepository) Get(ctx context.Context) (*domain.AdminData, error) {
	query := `SELECT announcements, featured_events, updated_at FROM admin_data WHERE id = 1`
	var annRaw, featRaw []byte
	data := &domain.AdminData{}
	err := r.DB.QueryRowContext(ctx, query).Scan(&annRaw, &featRaw, &data.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(annRaw, &data.Announcements); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(featRaw, &data.FeaturedEvents); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *adminDataRepository) Replace(ctx context.Context, data *domain.AdminData) error {
	annRaw, err := json.Marshal(data.Announcements)
	if err != nil {
		return err
	}
	featRaw, err := json.Marshal(data.FeaturedEvents)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO admin_data (id, announcements, featured_events, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET announcements = EXCLUDED.announcements,
			featured_events = EXCLUDED.featured_events,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.DB.ExecContext(ctx, query, annRaw, featRaw, data.UpdatedAt)
	return err
}
