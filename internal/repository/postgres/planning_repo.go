// internal/repository/postgres/planning_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"fleetmaint-service/internal/domain/maintenance"
	"fleetmaint-service/internal/domain/planning"
)

// trackTables maps an intervention track to its planning table. Table names
// come from this fixed map only, never from input.
var trackTables = map[maintenance.Track]string{
	maintenance.TrackControl: "planning_control",
	maintenance.TrackClean:   "planning_clean",
	maintenance.TrackReplace: "planning_replace",
}

type PlanningRepository struct {
	db *DB
}

func NewPlanningRepository(db *DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// ReplaceYear wipes the year across all three tracks and inserts the new
// entries in a single transaction, so readers never see a half-built year.
func (r *PlanningRepository) ReplaceYear(ctx context.Context, year int, entries []planning.Entry) error {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range trackTables {
		del := fmt.Sprintf(`DELETE FROM %s WHERE due_date BETWEEN $1 AND $2`, table)
		if _, err := tx.Exec(ctx, del, yearStart, yearEnd); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}

	for i := range entries {
		e := &entries[i]
		table, ok := trackTables[e.Track]
		if !ok {
			return fmt.Errorf("unknown intervention track %q", e.Track)
		}
		ins := fmt.Sprintf(`
			INSERT INTO %s (vehicle_id, item_name, due_date, status, reference_date, reference_source, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, table)
		_, err := tx.Exec(ctx, ins,
			e.VehicleID, e.ItemName, e.DueDate, string(e.Status),
			e.ReferenceDate, e.ReferenceSource, e.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert planning entry: %w", mapFKViolation(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit planning year: %w", err)
	}
	return nil
}

// ListYear returns the union of the three tracks for the year, ordered by due
// date.
func (r *PlanningRepository) ListYear(ctx context.Context, year int) ([]planning.Entry, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query := fmt.Sprintf(`
		SELECT id, 'control' AS track, vehicle_id, item_name, due_date, completed_at, status, reference_date, reference_source, note
		FROM %s WHERE due_date BETWEEN $1 AND $2
		UNION ALL
		SELECT id, 'clean', vehicle_id, item_name, due_date, completed_at, status, reference_date, reference_source, note
		FROM %s WHERE due_date BETWEEN $1 AND $2
		UNION ALL
		SELECT id, 'replace', vehicle_id, item_name, due_date, completed_at, status, reference_date, reference_source, note
		FROM %s WHERE due_date BETWEEN $1 AND $2
		ORDER BY due_date, vehicle_id, item_name
	`,
		trackTables[maintenance.TrackControl],
		trackTables[maintenance.TrackClean],
		trackTables[maintenance.TrackReplace],
	)

	rows, err := r.db.Pool().Query(ctx, query, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list planning year: %w", err)
	}
	defer rows.Close()

	var entries []planning.Entry
	for rows.Next() {
		var e planning.Entry
		var track, status string
		var refDate *time.Time
		if err := rows.Scan(
			&e.ID, &track, &e.VehicleID, &e.ItemName, &e.DueDate,
			&e.CompletedAt, &status, &refDate, &e.ReferenceSource, &e.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan planning entry: %w", err)
		}
		e.Track = maintenance.Track(track)
		e.Status = planning.Status(status)
		if refDate != nil {
			e.ReferenceDate = *refDate
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
