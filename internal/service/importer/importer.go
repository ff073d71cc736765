// Package importer ingests the legacy CSV exports: the vehicle master file
// and the two per-row-id logs with watermark-based incremental import.
package importer

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fleetmaint-service/internal/domain/fleet"
	"fleetmaint-service/internal/domain/history"
	"fleetmaint-service/internal/domain/maintenance"
	"fleetmaint-service/internal/pkg/csvx"
	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Fixed file names of the legacy export drop.
const (
	VehicleFile    = "MATRICE.csv"
	PreventiveFile = "VIDANGE.csv"
	CurativeFile   = "SUIVI_CURATIF.csv"
)

type Importer struct {
	vehicles fleet.Repository
	records  history.Repository
	syncLog  history.SyncLogRepository
	rules    []DerivationRule
	open     func(path string) (*csvx.Reader, func(), error)
	logger   *zap.Logger
}

func NewImporter(
	vehicles fleet.Repository,
	records history.Repository,
	syncLog history.SyncLogRepository,
	logger *zap.Logger,
) *Importer {
	return &Importer{
		vehicles: vehicles,
		records:  records,
		syncLog:  syncLog,
		rules:    DefaultDerivationRules,
		open:     openCSV,
		logger:   logger,
	}
}

// FileResult summarizes one file of an ImportAll run.
type FileResult struct {
	File      string `json:"file"`
	RowsAdded int    `json:"rows_added"`
	Err       error  `json:"-"`
	Error     string `json:"error,omitempty"`
}

// ImportAll runs the three imports in catalog-first order. No single file's
// failure stops the remaining files.
func (s *Importer) ImportAll(ctx context.Context, dir string) []FileResult {
	runID := newRunID()
	logger := s.logger.With(zap.String("run_id", runID))

	results := make([]FileResult, 0, 3)
	run := func(file string, fn func() (int, error)) {
		n, err := fn()
		res := FileResult{File: file, RowsAdded: n, Err: err}
		if err != nil {
			res.Error = err.Error()
			logger.Warn("import failed", zap.String("file", file), zap.Error(err))
		} else {
			logger.Info("import finished", zap.String("file", file), zap.Int("rows", n))
		}
		results = append(results, res)
	}

	run(VehicleFile, func() (int, error) {
		return s.ImportVehicles(ctx, filepath.Join(dir, VehicleFile))
	})
	run(PreventiveFile, func() (int, error) {
		return s.importLog(ctx, filepath.Join(dir, PreventiveFile), history.SourcePreventive, true, runID)
	})
	run(CurativeFile, func() (int, error) {
		return s.importLog(ctx, filepath.Join(dir, CurativeFile), history.SourceCurative, true, runID)
	})
	return results
}

// ImportVehicles upserts the vehicle catalog; the latest import wins per
// vehicle id. Rows without a vehicle id are skipped.
func (s *Importer) ImportVehicles(ctx context.Context, path string) (int, error) {
	r, closeFile, err := s.open(path)
	if err != nil {
		return 0, err
	}
	defer closeFile()

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("%w: %s: %v", xerrors.ErrFileUnreadable, path, err)
		}
		vehicleID := rec.Str("matricule")
		if vehicleID == "" {
			continue
		}
		v := &fleet.Vehicle{
			VehicleID:   vehicleID,
			Designation: rec.Str("designation"),
			Year:        rec.Int("annee", 0),
			OilQuantity: rec.Int("qte_vidange", 0),
			Barcode:     rec.Str("code_barre"),
			Brand:       rec.Str("marque"),
			TireType:    rec.Str("pneumatique"),
			Category:    rec.Str("categorie"),
		}
		if err := s.vehicles.Upsert(ctx, v); err != nil {
			return count, fmt.Errorf("upsert vehicle %s: %w", vehicleID, err)
		}
		count++
	}
	return count, nil
}

// ImportPreventiveLog ingests the usage/preventive log. One source row can
// yield several history records, one per matched derivation rule.
func (s *Importer) ImportPreventiveLog(ctx context.Context, path string, incremental bool) (int, error) {
	return s.importLog(ctx, path, history.SourcePreventive, incremental, newRunID())
}

// ImportCurativeLog ingests the unscheduled-repair log.
func (s *Importer) ImportCurativeLog(ctx context.Context, path string, incremental bool) (int, error) {
	return s.importLog(ctx, path, history.SourceCurative, incremental, newRunID())
}

func (s *Importer) importLog(ctx context.Context, path string, source history.SourceType, incremental bool, runID string) (int, error) {
	r, closeFile, err := s.open(path)
	if err != nil {
		return 0, err
	}
	defer closeFile()

	watermark := ""
	if incremental {
		watermark, err = s.syncLog.LatestWatermark(ctx, source)
		if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
			return 0, fmt.Errorf("load watermark for %s: %w", source, err)
		}
	}

	count := 0
	maxRowID := ""
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Watermark is not advanced; rows already committed by this
			// partial run stay and may be re-inserted on retry.
			return count, fmt.Errorf("%w: %s: %v", xerrors.ErrFileUnreadable, path, err)
		}

		rowID := rec.Str("nbsi")
		if rowID == "" {
			continue
		}
		if incremental && watermark != "" && CompareRowID(rowID, watermark) <= 0 {
			continue
		}
		vehicleID := rec.Str("matricule")
		if vehicleID == "" {
			continue
		}

		var added int
		switch source {
		case history.SourcePreventive:
			added, err = s.insertPreventive(ctx, rec, vehicleID, rowID, filepath.Base(path))
		case history.SourceCurative:
			added, err = s.insertCurative(ctx, rec, vehicleID, rowID)
		}
		if err != nil {
			return count, err
		}
		count += added

		// Max across accepted rows, not last-seen, so progress is monotonic
		// whatever order the file is in.
		if maxRowID == "" || CompareRowID(rowID, maxRowID) > 0 {
			maxRowID = rowID
		}
	}

	if count > 0 {
		entry := &history.SyncEntry{
			SourceType: source,
			LastRowID:  maxRowID,
			SyncedAt:   time.Now().UTC(),
			RowsAdded:  count,
			Status:     "SUCCESS",
			Message:    fmt.Sprintf("imported %d rows from %s", count, filepath.Base(path)),
			RunID:      runID,
		}
		if err := s.syncLog.Append(ctx, entry); err != nil {
			return count, fmt.Errorf("append sync log: %w", err)
		}
	}
	return count, nil
}

func (s *Importer) insertPreventive(ctx context.Context, rec csvx.Record, vehicleID, rowID, sourceFile string) (int, error) {
	performedAt := rec.Date("date")
	if performedAt == nil {
		return 0, nil
	}
	added := 0
	for _, item := range deriveItems(s.rules, rec) {
		record := &history.PreventiveRecord{
			VehicleID:    vehicleID,
			ItemName:     item,
			Track:        maintenance.TrackReplace,
			PerformedAt:  *performedAt,
			MeterReading: rec.Float("compteur_km/h"),
			Note:         rec.Str("obs"),
			SourceFile:   sourceFile,
			SourceRowID:  rowID,
		}
		if err := s.records.InsertPreventive(ctx, record); err != nil {
			return added, fmt.Errorf("insert preventive row %s: %w", rowID, err)
		}
		added++
	}
	return added, nil
}

func (s *Importer) insertCurative(ctx context.Context, rec csvx.Record, vehicleID, rowID string) (int, error) {
	record := &history.CurativeRecord{
		VehicleID:        vehicleID,
		Category:         rec.Str("categorie"),
		Designation:      rec.Str("designation"),
		EnteredAt:        rec.Date("date_entree"),
		ExitedAt:         rec.Date("date_sortie"),
		DeclaredFailure:  rec.Str("panne_declaree"),
		CurrentSituation: rec.Str("sit_actuelle"),
		Parts:            rec.Str("pieces"),
		Technician:       rec.Str("intervenant"),
		Assignment:       rec.Str("affectation"),
		DowntimeCount:    rec.Int("nbr_indisponibilite", 0),
		WorkdayCount:     rec.Int("jour_ouvrable", 0),
		FailureType:      rec.Str("type_de_panne"),
		SourceRowID:      rowID,
	}
	if err := s.records.InsertCurative(ctx, record); err != nil {
		return 0, fmt.Errorf("insert curative row %s: %w", rowID, err)
	}
	return 1, nil
}

func openCSV(path string) (*csvx.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", xerrors.ErrMissingFile, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", xerrors.ErrFileUnreadable, path, err)
	}
	r, err := csvx.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s: %v", xerrors.ErrFileUnreadable, path, err)
	}
	return r, func() { f.Close() }, nil
}

func newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
