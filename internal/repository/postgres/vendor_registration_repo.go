package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mainstreet/internal/domain"
)

type vendorRegistrationRepository struct {
	DB *sql.DB
}

func NewVendorRegistrationRepository(db *sql.DB) domain.VendorRegistrationRepository {
	return &vendorRegistrationRepository{DB: db}
}

const vendorRegistrationColumns = `id, business_name, contact_name, email, phone,
	event_type, vendor_category, description, special_requests, status, created_at, updated_at`

func (r *vendorRegistrationRepository) Create(ctx context.Context, reg *domain.VendorRegistration) error {
	query := `
		INSERT INTO vendor_registrations (business_name, contact_name, email, phone,
			event_type, vendor_category, description, special_requests, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.BusinessName, reg.ContactName, reg.Email, reg.Phone,
		reg.EventType, reg.VendorCategory, reg.Description, reg.SpecialRequests, reg.Status, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
}

func (r *vendorRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.VendorRegistration, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendor_registrations WHERE id = $1`, vendorRegistrationColumns)
	reg := &domain.VendorRegistration{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&reg.ID, &reg.BusinessName, &reg.ContactName, &reg.Email, &reg.Phone,
		&reg.EventType, &reg.VendorCategory, &reg.Description, &reg.SpecialRequests, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *vendorRegistrationRepository) List(ctx context.Context) ([]*domain.VendorRegistration, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendor_registrations ORDER BY created_at DESC`, vendorRegistrationColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.VendorRegistration
	for rows.Next() {
		reg := &domain.VendorRegistration{}
		if err := rows.Scan(
			&reg.ID, &reg.BusinessName, &reg.ContactName, &reg.Email, &reg.Phone,
			&reg.EventType, &reg.VendorCategory, &reg.Description, &reg.SpecialRequests, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *vendorRegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.VendorStatus) (*domain.VendorRegistration, error) {
	query := fmt.Sprintf(`
		UPDATE vendor_registrations SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, vendorRegistrationColumns)
	reg := &domain.VendorRegistration{}
	err := r.DB.QueryRowContext(ctx, query, status, id).Scan(
		&reg.ID, &reg.BusinessName, &reg.ContactName, &reg.Email, &reg.Phone,
		&reg.EventType, &reg.VendorCategory, &reg.Description, &reg.SpecialRequests, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *vendorRegistrationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM vendor_registrations WHERE id = $1`
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
