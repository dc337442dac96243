package postgres

import (
	"context"
	"database/sql"

	"mainstreet/internal/domain"
)

type contactMessageRepository struct {
	DB *sql.DB
}

func NewContactMessageRepository(db *sql.DB) domain.ContactMessageRepository {
	return &contactMessageRepository{DB: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
	).Scan(&msg.ID)
}

func (r *contactMessageRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*domain.ContactMessage
	for rows.Next() {
		msg := &domain.ContactMessage{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
