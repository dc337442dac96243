package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mainstreet/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{
	"id", "slug", "title", "description", "start_date", "end_date", "time_text", "location",
	"status", "event_type", "cap", "hero_image", "gallery_slug", "featured",
	"vendor_url", "sponsor_url", "attendee_url", "created_at", "updated_at",
}

func eventRow(id string) *sqlmock.Rows {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(eventCols).AddRow(
		id, "summer-market", "Summer Market", "Booths on Main", created, nil, "10am-4pm", "Main Street",
		"open", "street-market", nil, "", "", false,
		"https://forms.example/vendor", "", "", created, created,
	)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Slug:      "summer-market",
				Title:     "Summer Market",
				StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Status:    domain.EventStatusOpen,
				EventType: domain.EventTypeStreetMarket,
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID:  "ev-uuid-1",
			wantErr: false,
		},
		{
			name: "merges nested links into flat columns",
			event: &domain.Event{
				Slug:      "cruise-night",
				Title:     "Cruise Night",
				StartDate: time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
				Status:    domain.EventStatusOpen,
				EventType: domain.EventTypeCarCruise,
				VendorURL: "https://old.example/vendor",
				Links:     &domain.EventLinks{VendorURL: "https://new.example/vendor"},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("cruise-night", "Cruise Night", "", time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
						sql.NullTime{}, "", "", domain.EventStatusOpen, domain.EventTypeCarCruise,
						sql.NullInt64{}, "", "", false,
						"https://new.example/vendor", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-2"))
			},
			wantID:  "ev-uuid-2",
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.Event{
				Slug:      "x",
				Title:     "X",
				StartDate: time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(eventRow("ev-1"))

		repo := NewEventRepository(db)
		e, err := repo.GetByID(ctx, "ev-1")
		require.NoError(t, err)
		require.Equal(t, "summer-market", e.Slug)
		require.Equal(t, domain.EventSourceDynamic, e.Source)
		require.Nil(t, e.EndDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update touches only sent columns", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title = \$1`).
			WithArgs("New Title", "ev-1").
			WillReturnRows(eventRow("ev-1"))

		repo := NewEventRepository(db)
		title := "New Title"
		_, err = repo.Update(ctx, "ev-1", domain.EventUpdate{Title: &title})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update falls back to fetch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(eventRow("ev-1"))

		repo := NewEventRepository(db)
		e, err := repo.Update(ctx, "ev-1", domain.EventUpdate{})
		require.NoError(t, err)
		require.Equal(t, "ev-1", e.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET`).
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		title := "x"
		_, err = repo.Update(ctx, "missing", domain.EventUpdate{Title: &title})
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		require.NoError(t, repo.Delete(ctx, "ev-1"))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		err = repo.Delete(ctx, "missing")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
