package history

import "context"

type Repository interface {
	InsertPreventive(ctx context.Context, rec *PreventiveRecord) error
	InsertCurative(ctx context.Context, rec *CurativeRecord) error
}

type SyncLogRepository interface {
	// LatestWatermark returns the last-processed row id for the source type,
	// or xerrors.ErrNotFound when no import has run yet.
	LatestWatermark(ctx context.Context, source SourceType) (string, error)
	Append(ctx context.Context, entry *SyncEntry) error
	Recent(ctx context.Context, limit int) ([]SyncEntry, error)
}
