package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mainstreet/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `id, slug, title, description, start_date, end_date, time_text, location,
	status, event_type, cap, hero_image, gallery_slug, featured,
	vendor_url, sponsor_url, attendee_url, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	// Flat link columns hold the merged view; the nested block never reaches
	// the database.
	links := e.URLs()
	query := `
		INSERT INTO events (slug, title, description, start_date, end_date, time_text, location,
			status, event_type, cap, hero_image, gallery_slug, featured,
			vendor_url, sponsor_url, attendee_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	var endNull sql.NullTime
	if e.EndDate != nil {
		endNull = sql.NullTime{Time: *e.EndDate, Valid: true}
	}
	var capNull sql.NullInt64
	if e.Cap != nil {
		capNull = sql.NullInt64{Int64: int64(*e.Cap), Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		e.Slug, e.Title, e.Description, e.StartDate, endNull, e.TimeText, e.Location,
		e.Status, e.EventType, capNull, e.HeroImage, e.GallerySlug, e.Featured,
		links.VendorURL, links.SponsorURL, links.AttendeeURL, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY start_date, slug`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, v interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.StartDate != nil {
		add("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		add("end_date", *upd.EndDate)
	}
	if upd.TimeText != nil {
		add("time_text", *upd.TimeText)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.EventType != nil {
		add("event_type", *upd.EventType)
	}
	if upd.Cap != nil {
		add("cap", *upd.Cap)
	}
	if upd.HeroImage != nil {
		add("hero_image", *upd.HeroImage)
	}
	if upd.GallerySlug != nil {
		add("gallery_slug", *upd.GallerySlug)
	}
	if upd.Featured != nil {
		add("featured", *upd.Featured)
	}
	if upd.Links != nil {
		add("vendor_url", upd.Links.VendorURL)
		add("sponsor_url", upd.Links.SponsorURL)
		add("attendee_url", upd.Links.AttendeeURL)
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{Source: domain.EventSourceDynamic}
	var endNull sql.NullTime
	var capNull sql.NullInt64
	err := row.Scan(
		&e.ID, &e.Slug, &e.Title, &e.Description, &e.StartDate, &endNull, &e.TimeText, &e.Location,
		&e.Status, &e.EventType, &capNull, &e.HeroImage, &e.GallerySlug, &e.Featured,
		&e.VendorURL, &e.SponsorURL, &e.AttendeeURL, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endNull.Valid {
		t := endNull.Time
		e.EndDate = &t
	}
	if capNull.Valid {
		c := int(capNull.Int64)
		e.Cap = &c
	}
	return e, nil
}
