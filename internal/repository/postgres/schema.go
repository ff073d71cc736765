// internal/repository/postgres/schema.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id   TEXT PRIMARY KEY,
		designation  TEXT NOT NULL,
		year         INTEGER NOT NULL DEFAULT 0,
		oil_quantity INTEGER NOT NULL DEFAULT 0,
		barcode      TEXT NOT NULL DEFAULT '',
		brand        TEXT NOT NULL DEFAULT '',
		tire_type    TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_items (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT UNIQUE NOT NULL,
		item_group TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS interval_policies (
		id            BIGSERIAL PRIMARY KEY,
		item_name     TEXT NOT NULL,
		track         TEXT NOT NULL CHECK (track IN ('control', 'clean', 'replace')),
		interval_days INTEGER NOT NULL CHECK (interval_days > 0),
		UNIQUE (item_name, track, interval_days)
	)`,
	`CREATE TABLE IF NOT EXISTS exclusions (
		id        BIGSERIAL PRIMARY KEY,
		category  TEXT NOT NULL,
		item_name TEXT NOT NULL,
		UNIQUE (category, item_name)
	)`,
	`CREATE TABLE IF NOT EXISTS preventive_history (
		id            BIGSERIAL PRIMARY KEY,
		vehicle_id    TEXT NOT NULL REFERENCES vehicles(vehicle_id),
		item_name     TEXT NOT NULL,
		track         TEXT NOT NULL,
		performed_at  DATE NOT NULL,
		meter_reading DOUBLE PRECISION,
		note          TEXT NOT NULL DEFAULT '',
		source_file   TEXT NOT NULL DEFAULT '',
		source_row_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS curative_history (
		id                BIGSERIAL PRIMARY KEY,
		vehicle_id        TEXT NOT NULL REFERENCES vehicles(vehicle_id),
		category          TEXT NOT NULL DEFAULT '',
		designation       TEXT NOT NULL DEFAULT '',
		entered_at        DATE,
		exited_at         DATE,
		declared_failure  TEXT NOT NULL DEFAULT '',
		current_situation TEXT NOT NULL DEFAULT '',
		parts             TEXT NOT NULL DEFAULT '',
		technician        TEXT NOT NULL DEFAULT '',
		assignment        TEXT NOT NULL DEFAULT '',
		downtime_count    INTEGER NOT NULL DEFAULT 0,
		workday_count     INTEGER NOT NULL DEFAULT 0,
		failure_type      TEXT NOT NULL DEFAULT '',
		source_row_id     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sync_log (
		id          BIGSERIAL PRIMARY KEY,
		source_type TEXT NOT NULL,
		last_row_id TEXT NOT NULL,
		synced_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		rows_added  INTEGER NOT NULL,
		status      TEXT NOT NULL,
		message     TEXT NOT NULL DEFAULT '',
		run_id      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS planning_control (
		id               BIGSERIAL PRIMARY KEY,
		vehicle_id       TEXT NOT NULL REFERENCES vehicles(vehicle_id),
		item_name        TEXT NOT NULL,
		due_date         DATE NOT NULL,
		completed_at     DATE,
		status           TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'done', 'deferred', 'cancelled_repair')),
		reference_date   DATE,
		reference_source TEXT NOT NULL DEFAULT '',
		note             TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS planning_clean (
		id               BIGSERIAL PRIMARY KEY,
		vehicle_id       TEXT NOT NULL REFERENCES vehicles(vehicle_id),
		item_name        TEXT NOT NULL,
		due_date         DATE NOT NULL,
		completed_at     DATE,
		status           TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'done', 'deferred', 'cancelled_repair')),
		reference_date   DATE,
		reference_source TEXT NOT NULL DEFAULT '',
		note             TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS planning_replace (
		id               BIGSERIAL PRIMARY KEY,
		vehicle_id       TEXT NOT NULL REFERENCES vehicles(vehicle_id),
		item_name        TEXT NOT NULL,
		due_date         DATE NOT NULL,
		completed_at     DATE,
		status           TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'done', 'deferred', 'cancelled_repair')),
		reference_date   DATE,
		reference_source TEXT NOT NULL DEFAULT '',
		note             TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prev_hist_vehicle ON preventive_history(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_prev_hist_date ON preventive_history(performed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_cur_hist_vehicle ON curative_history(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cur_hist_exit ON curative_history(exited_at)`,
	`CREATE INDEX IF NOT EXISTS idx_exclusions_category ON exclusions(category)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_log_source ON sync_log(source_type, synced_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_control_vehicle ON planning_control(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_control_due ON planning_control(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_clean_vehicle ON planning_clean(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_clean_due ON planning_clean(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_replace_vehicle ON planning_replace(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planning_replace_due ON planning_replace(due_date)`,
}

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}
	return nil
}
