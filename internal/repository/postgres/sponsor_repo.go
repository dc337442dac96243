package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mainstreet/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

const sponsorColumns = `id, name, level, logo_url, website_url, event_type, sponsor_image_url, created_at, updated_at`

func (r *sponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	query := `
		INSERT INTO sponsors (name, level, logo_url, website_url, event_type, sponsor_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.Name, s.Level, s.LogoURL, s.WebsiteURL, s.EventType, s.SponsorImageURL, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sponsorRepository) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	query := fmt.Sprintf(`SELECT %s FROM sponsors WHERE id = $1`, sponsorColumns)
	s := &domain.Sponsor{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Level, &s.LogoURL, &s.WebsiteURL, &s.EventType, &s.SponsorImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sponsorRepository) List(ctx context.Context) ([]*domain.Sponsor, error) {
	query := fmt.Sprintf(`SELECT %s FROM sponsors ORDER BY name`, sponsorColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsors []*domain.Sponsor
	for rows.Next() {
		s := &domain.Sponsor{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Level, &s.LogoURL, &s.WebsiteURL, &s.EventType, &s.SponsorImageURL, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) Update(ctx context.Context, id string, upd domain.SponsorUpdate) (*domain.Sponsor, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, v interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Level != nil {
		add("level", *upd.Level)
	}
	if upd.LogoURL != nil {
		add("logo_url", *upd.LogoURL)
	}
	if upd.WebsiteURL != nil {
		add("website_url", *upd.WebsiteURL)
	}
	if upd.EventType != nil {
		add("event_type", *upd.EventType)
	}
	if upd.SponsorImageURL != nil {
		add("sponsor_image_url", *upd.SponsorImageURL)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE sponsors SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, sponsorColumns)
	s := &domain.Sponsor{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Name, &s.Level, &s.LogoURL, &s.WebsiteURL, &s.EventType, &s.SponsorImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sponsors WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
