package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mainstreet/internal/domain"
)

type businessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) domain.BusinessRepository {
	return &businessRepository{DB: db}
}

const businessColumns = `id, name, description, address, phone, website, category, image_url, created_at, updated_at`

func (r *businessRepository) Create(ctx context.Context, b *domain.Business) error {
	query := `
		INSERT INTO businesses (name, description, address, phone, website, category, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.Name, b.Description, b.Address, b.Phone, b.Website, b.Category, b.ImageURL, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1`, businessColumns)
	b := &domain.Business{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Description, &b.Address, &b.Phone, &b.Website, &b.Category, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *businessRepository) List(ctx context.Context) ([]*domain.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses ORDER BY name`, businessColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		b := &domain.Business{}
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Description, &b.Address, &b.Phone, &b.Website, &b.Category, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (r *businessRepository) Update(ctx context.Context, id string, upd domain.BusinessUpdate) (*domain.Business, error) {
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
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Website != nil {
		add("website", *upd.Website)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE businesses SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, businessColumns)
	b := &domain.Business{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.Name, &b.Description, &b.Address, &b.Phone, &b.Website, &b.Category, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *businessRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM businesses WHERE id = $1`
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
