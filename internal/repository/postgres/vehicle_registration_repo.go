package postgres

import (
	"context"
	"database/sql"

	"mainstreet/internal/domain"
)

type vehicleRegistrationRepository struct {
	DB *sql.DB
}

func NewVehicleRegistrationRepository(db *sql.DB) domain.VehicleRegistrationRepository {
	return &vehicleRegistrationRepository{DB: db}
}

func (r *vehicleRegistrationRepository) Create(ctx context.Context, reg *domain.VehicleRegistration) error {
	query := `
		INSERT INTO vehicle_registrations (first_name, last_name, email, phone,
			vehicle_year, vehicle_make, vehicle_model, vehicle_color, vehicle_class, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.FirstName, reg.LastName, reg.Email, reg.Phone,
		reg.VehicleYear, reg.VehicleMake, reg.VehicleModel, reg.VehicleColor, reg.VehicleClass, reg.Notes, reg.CreatedAt,
	).Scan(&reg.ID)
}

func (r *vehicleRegistrationRepository) List(ctx context.Context) ([]*domain.VehicleRegistration, error) {
	query := `
		SELECT id, first_name, last_name, email, phone,
			vehicle_year, vehicle_make, vehicle_model, vehicle_color, vehicle_class, notes, created_at
		FROM vehicle_registrations
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.VehicleRegistration
	for rows.Next() {
		reg := &domain.VehicleRegistration{}
		if err := rows.Scan(
			&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.Phone,
			&reg.VehicleYear, &reg.VehicleMake, &reg.VehicleModel, &reg.VehicleColor, &reg.VehicleClass, &reg.Notes, &reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
