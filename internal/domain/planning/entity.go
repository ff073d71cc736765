package planning

import (
	"time"

	"fleetmaint-service/internal/domain/maintenance"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusDone            Status = "done"
	StatusDeferred        Status = "deferred"
	StatusCancelledRepair Status = "cancelled_repair"
)

// Entry is one scheduled maintenance occurrence. An entry is effectively keyed
// by (vehicle, item, due date, track). Status mutation by field operations
// happens outside this service.
type Entry struct {
	ID              int64             `json:"id" db:"id"`
	VehicleID       string            `json:"vehicle_id" db:"vehicle_id"`
	ItemName        string            `json:"item_name" db:"item_name"`
	Track           maintenance.Track `json:"track" db:"track"`
	DueDate         time.Time         `json:"due_date" db:"due_date"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	Status          Status            `json:"status" db:"status"`
	ReferenceDate   time.Time         `json:"reference_date" db:"reference_date"`
	ReferenceSource string            `json:"reference_source" db:"reference_source"`
	Note            string            `json:"note" db:"note"`
}
