// Package ledger is the append-only store of calculated visit records.
// Records are never updated or deleted through this package; corrections
// happen by direct manipulation of the backing table.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/model"
	embedsql "github.com/gyeh/fonoledger/internal/sql"
)

// StorageError reports a ledger read or write failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Repository provides append and read access to ledger.visits.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a Repository over an existing connection pool.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Append inserts one visit record. The record is written exactly as
// calculated; nothing is persisted when the caller's calculation failed.
func (r *Repository) Append(ctx context.Context, rec *model.VisitRecord) error {
	_, err := r.pool.Exec(ctx, embedsql.InsertVisit,
		rec.VisitID,
		rec.VisitDate,
		rec.Location,
		rec.Item,
		rec.PaymentMethod,
		rec.Patient,
		rec.Gross,
		rec.Discount,
		rec.Commission,
		rec.Adjustment,
		rec.Net,
		rec.RecordedAt,
	)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

// LoadAll returns every visit record ordered by visit date, then by
// recording order within a day. A ledger that does not exist yet (the
// visits table was never migrated) reads as empty rather than failing.
func (r *Repository) LoadAll(ctx context.Context) ([]model.VisitRecord, error) {
	rows, err := r.pool.Query(ctx, embedsql.SelectVisits)
	if err != nil {
		if isUndefinedTable(err) {
			return []model.VisitRecord{}, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	var recs []model.VisitRecord
	for rows.Next() {
		var rec model.VisitRecord
		if err := rows.Scan(
			&rec.VisitID,
			&rec.VisitDate,
			&rec.Location,
			&rec.Item,
			&rec.PaymentMethod,
			&rec.Patient,
			&rec.Gross,
			&rec.Discount,
			&rec.Commission,
			&rec.Adjustment,
			&rec.Net,
			&rec.RecordedAt,
		); err != nil {
			return nil, &StorageError{Op: "load", Err: err}
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return []model.VisitRecord{}, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	return recs, nil
}

// Restore bulk-loads records into the ledger via the COPY protocol,
// reading from the channel until it closes. Used to re-import externally
// edited dumps; it performs no recalculation.
func (r *Repository) Restore(ctx context.Context, ch <-chan *model.VisitRecord) (int64, error) {
	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"ledger", "visits"},
		model.VisitColumns(),
		db.NewVisitSource(ch),
	)
	if err != nil {
		return n, &StorageError{Op: "restore", Err: err}
	}
	return n, nil
}

// isUndefinedTable reports whether err is Postgres undefined_table (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
