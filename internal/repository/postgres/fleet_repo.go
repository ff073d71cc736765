// internal/repository/postgres/fleet_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleetmaint-service/internal/domain/fleet"
	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FleetRepository struct {
	db *pgxpool.Pool
}

func NewFleetRepository(db *pgxpool.Pool) *FleetRepository {
	return &FleetRepository{db: db}
}

// Upsert inserts or replaces the vehicle; the latest import wins.
func (r *FleetRepository) Upsert(ctx context.Context, v *fleet.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, designation, year, oil_quantity, barcode, brand, tire_type, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vehicle_id) DO UPDATE SET
			designation  = EXCLUDED.designation,
			year         = EXCLUDED.year,
			oil_quantity = EXCLUDED.oil_quantity,
			barcode      = EXCLUDED.barcode,
			brand        = EXCLUDED.brand,
			tire_type    = EXCLUDED.tire_type,
			category     = EXCLUDED.category
	`
	_, err := r.db.Exec(ctx, query,
		v.VehicleID, v.Designation, v.Year, v.OilQuantity,
		v.Barcode, v.Brand, v.TireType, v.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert vehicle: %w", err)
	}
	return nil
}

func (r *FleetRepository) FindByID(ctx context.Context, vehicleID string) (*fleet.Vehicle, error) {
	query := `
		SELECT vehicle_id, designation, year, oil_quantity, barcode, brand, tire_type, category
		FROM vehicles
		WHERE vehicle_id = $1
	`
	var v fleet.Vehicle
	err := r.db.QueryRow(ctx, query, vehicleID).Scan(
		&v.VehicleID, &v.Designation, &v.Year, &v.OilQuantity,
		&v.Barcode, &v.Brand, &v.TireType, &v.Category,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &v, nil
}

func (r *FleetRepository) List(ctx context.Context) ([]fleet.Vehicle, error) {
	query := `
		SELECT vehicle_id, designation, year, oil_quantity, barcode, brand, tire_type, category
		FROM vehicles
		ORDER BY vehicle_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []fleet.Vehicle
	for rows.Next() {
		var v fleet.Vehicle
		if err := rows.Scan(
			&v.VehicleID, &v.Designation, &v.Year, &v.OilQuantity,
			&v.Barcode, &v.Brand, &v.TireType, &v.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *FleetRepository) Exists(ctx context.Context, vehicleID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_id = $1)`, vehicleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vehicle existence: %w", err)
	}
	return exists, nil
}
