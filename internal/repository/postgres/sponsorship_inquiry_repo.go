package postgres

import (
	"context"
	"database/sql"

	"mainstreet/internal/domain"
)

type sponsorshipInquiryRepository struct {
	DB *sql.DB
}

func NewSponsorshipInquiryRepository(db *sql.DB) domain.SponsorshipInquiryRepository {
	return &sponsorshipInquiryRepository{DB: db}
}

func (r *sponsorshipInquiryRepository) Create(ctx context.Context, inq *domain.SponsorshipInquiry) error {
	query := `
		INSERT INTO sponsorship_inquiries (business_name, contact_name, email, phone, level, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		inq.BusinessName, inq.ContactName, inq.Email, inq.Phone, inq.Level, inq.Message, inq.CreatedAt,
	).Scan(&inq.ID)
}

func (r *sponsorshipInquiryRepository) List(ctx context.Context) ([]*domain.SponsorshipInquiry, error) {
	query := `
		SELECT id, business_name, contact_name, email, phone, level, message, created_at
		FROM sponsorship_inquiries
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*domain.SponsorshipInquiry
	for rows.Next() {
		inq := &domain.SponsorshipInquiry{}
		if err := rows.Scan(
			&inq.ID, &inq.BusinessName, &inq.ContactName, &inq.Email, &inq.Phone, &inq.Level, &inq.Message, &inq.CreatedAt,
		); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
