package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecord is one appended ledger row: the calculated breakdown plus
// the identifying fields supplied by the caller. Records are immutable
// once appended; the ledger defines no update or delete operations.
type VisitRecord struct {
	VisitID       uuid.UUID
	VisitDate     time.Time
	Location      string
	Item          string
	PaymentMethod string
	Patient       string

	Gross      float64
	Discount   float64
	Commission float64
	Adjustment float64
	Net        float64

	RecordedAt time.Time
}

// VisitColumns returns the ordered column names for COPY into ledger.visits.
func VisitColumns() []string {
	return []string{
		"visit_id",
		"visit_date",
		"location",
		"item",
		"payment_method",
		"patient",
		"gross",
		"discount",
		"commission",
		"extra_adjustment",
		"net",
		"recorded_at",
	}
}

// CopyValues returns the record values in the same order as VisitColumns(),
// suitable for pgx CopyFromSource.
func (r *VisitRecord) CopyValues() []any {
	return []any{
		r.VisitID,
		r.VisitDate,
		r.Location,
		r.Item,
		r.PaymentMethod,
		r.Patient,
		r.Gross,
		r.Discount,
		r.Commission,
		r.Adjustment,
		r.Net,
		r.RecordedAt,
	}
}
