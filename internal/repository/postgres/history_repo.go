// internal/repository/postgres/history_repo.go
package postgres

import (
	"context"
	"fmt"

	"fleetmaint-service/internal/domain/history"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) InsertPreventive(ctx context.Context, rec *history.PreventiveRecord) error {
	query := `
		INSERT INTO preventive_history
			(vehicle_id, item_name, track, performed_at, meter_reading, note, source_file, source_row_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rec.VehicleID, rec.ItemName, string(rec.Track), rec.PerformedAt,
		rec.MeterReading, rec.Note, rec.SourceFile, rec.SourceRowID,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to insert preventive record: %w", mapFKViolation(err))
	}
	return nil
}

func (r *HistoryRepository) InsertCurative(ctx context.Context, rec *history.CurativeRecord) error {
	query := `
		INSERT INTO curative_history
			(vehicle_id, category, designation, entered_at, exited_at,
			 declared_failure, current_situation, parts, technician, assignment,
			 downtime_count, workday_count, failure_type, source_row_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		rec.VehicleID, rec.Category, rec.Designation, rec.EnteredAt, rec.ExitedAt,
		rec.DeclaredFailure, rec.CurrentSituation, rec.Parts, rec.Technician, rec.Assignment,
		rec.DowntimeCount, rec.WorkdayCount, rec.FailureType, rec.SourceRowID,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to insert curative record: %w", mapFKViolation(err))
	}
	return nil
}
