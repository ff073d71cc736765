package history

import (
	"time"

	"fleetmaint-service/internal/domain/maintenance"
)

// SourceType identifies which legacy export a record or watermark came from.
type SourceType string

const (
	SourcePreventive SourceType = "VIDANGE"
	SourceCurative   SourceType = "CURATIF"
)

// PreventiveRecord is one usage-based preventive work fact derived from the
// legacy log. A single source row can yield several records, one per derived
// item, all sharing the same SourceRowID. Append-only.
type PreventiveRecord struct {
	ID           int64             `json:"id" db:"id"`
	VehicleID    string            `json:"vehicle_id" db:"vehicle_id"`
	ItemName     string            `json:"item_name" db:"item_name"`
	Track        maintenance.Track `json:"track" db:"track"`
	PerformedAt  time.Time         `json:"performed_at" db:"performed_at"`
	MeterReading *float64          `json:"meter_reading,omitempty" db:"meter_reading"`
	Note         string            `json:"note" db:"note"`
	SourceFile   string            `json:"source_file" db:"source_file"`
	SourceRowID  string            `json:"source_row_id" db:"source_row_id"`
}

// CurativeRecord is one unscheduled repair from the legacy log. Append-only.
type CurativeRecord struct {
	ID               int64      `json:"id" db:"id"`
	VehicleID        string     `json:"vehicle_id" db:"vehicle_id"`
	Category         string     `json:"category" db:"category"`
	Designation      string     `json:"designation" db:"designation"`
	EnteredAt        *time.Time `json:"entered_at,omitempty" db:"entered_at"`
	ExitedAt         *time.Time `json:"exited_at,omitempty" db:"exited_at"`
	DeclaredFailure  string     `json:"declared_failure" db:"declared_failure"`
	CurrentSituation string     `json:"current_situation" db:"current_situation"`
	Parts            string     `json:"parts" db:"parts"`
	Technician       string     `json:"technician" db:"technician"`
	Assignment       string     `json:"assignment" db:"assignment"`
	DowntimeCount    int        `json:"downtime_count" db:"downtime_count"`
	WorkdayCount     int        `json:"workday_count" db:"workday_count"`
	FailureType      string     `json:"failure_type" db:"failure_type"`
	SourceRowID      string     `json:"source_row_id" db:"source_row_id"`
}

// SyncEntry is one row of the append-only sync log. The most recent entry per
// source type carries the authoritative watermark.
type SyncEntry struct {
	ID         int64      `json:"id" db:"id"`
	SourceType SourceType `json:"source_type" db:"source_type"`
	LastRowID  string     `json:"last_row_id" db:"last_row_id"`
	SyncedAt   time.Time  `json:"synced_at" db:"synced_at"`
	RowsAdded  int        `json:"rows_added" db:"rows_added"`
	Status     string     `json:"status" db:"status"`
	Message    string     `json:"message" db:"message"`
	RunID      string     `json:"run_id" db:"run_id"`
}
