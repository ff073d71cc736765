// internal/repository/postgres/db.go
package postgres

import (
	"context"
	"errors"

	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	pool *pgxpool.Pool
}

func NewDB(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.pool.Begin(ctx)
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

const fkViolationCode = "23503"

// mapFKViolation turns a foreign-key violation into the surfaced sentinel so
// callers can treat an unknown vehicle reference as a hard failure.
func mapFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
		return xerrors.Wrap(xerrors.ErrForeignKey, pgErr.ConstraintName)
	}
	return err
}
