// internal/repository/postgres/synclog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"fleetmaint-service/internal/domain/history"
	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncLogRepository struct {
	db *pgxpool.Pool
}

func NewSyncLogRepository(db *pgxpool.Pool) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// LatestWatermark returns the most recent watermark for the source type.
func (r *SyncLogRepository) LatestWatermark(ctx context.Context, source history.SourceType) (string, error) {
	query := `
		SELECT last_row_id
		FROM sync_log
		WHERE source_type = $1
		ORDER BY synced_at DESC, id DESC
		LIMIT 1
	`
	var last string
	err := r.db.QueryRow(ctx, query, string(source)).Scan(&last)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", xerrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load watermark: %w", err)
	}
	return last, nil
}

func (r *SyncLogRepository) Append(ctx context.Context, entry *history.SyncEntry) error {
	query := `
		INSERT INTO sync_log (source_type, last_row_id, synced_at, rows_added, status, message, run_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		string(entry.SourceType), entry.LastRowID, entry.SyncedAt,
		entry.RowsAdded, entry.Status, entry.Message, entry.RunID,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append sync log: %w", err)
	}
	return nil
}

func (r *SyncLogRepository) Recent(ctx context.Context, limit int) ([]history.SyncEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT id, source_type, last_row_id, synced_at, rows_added, status, message, run_id
		FROM sync_log
		ORDER BY synced_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync log: %w", err)
	}
	defer rows.Close()

	var entries []history.SyncEntry
	for rows.Next() {
		var e history.SyncEntry
		var source string
		if err := rows.Scan(
			&e.ID, &source, &e.LastRowID, &e.SyncedAt,
			&e.RowsAdded, &e.Status, &e.Message, &e.RunID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sync log entry: %w", err)
		}
		e.SourceType = history.SourceType(source)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
