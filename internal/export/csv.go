package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/fonoledger/internal/model"
)

// csvHeader is the fixed column set of a ledger dump, matching
// ledger.visits column order.
var csvHeader = []string{
	"visit_id", "visit_date", "location", "item", "payment_method",
	"patient", "gross", "discount", "commission", "extra_adjustment",
	"net", "recorded_at",
}

// WriteCSV writes the records as a ledger dump with a header row.
func WriteCSV(w io.Writer, recs []model.VisitRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range recs {
		r := &recs[i]
		row := []string{
			r.VisitID.String(),
			r.VisitDate.Format("2006-01-02"),
			r.Location,
			r.Item,
			r.PaymentMethod,
			r.Patient,
			formatAmount(r.Gross),
			formatAmount(r.Discount),
			formatAmount(r.Commission),
			formatAmount(r.Adjustment),
			formatAmount(r.Net),
			r.RecordedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ValidateHeader checks that a dump carries the expected columns in the
// expected order before any row is parsed.
func ValidateHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, col := range csvHeader {
		if strings.TrimSpace(header[i]) != col {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, col, header[i])
		}
	}
	return nil
}

// ReadCSV parses a ledger dump produced by WriteCSV (or edited externally,
// as long as the column set is preserved).
func ReadCSV(r io.Reader) ([]model.VisitRecord, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if err := ValidateHeader(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	var recs []model.VisitRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line+1, err)
		}
		line++

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseRow(row []string) (model.VisitRecord, error) {
	var rec model.VisitRecord
	var err error

	if rec.VisitID, err = uuid.Parse(row[0]); err != nil {
		return rec, fmt.Errorf("visit_id: %w", err)
	}
	if rec.VisitDate, err = time.Parse("2006-01-02", row[1]); err != nil {
		return rec, fmt.Errorf("visit_date: %w", err)
	}
	rec.Location = row[2]
	rec.Item = row[3]
	rec.PaymentMethod = row[4]
	rec.Patient = row[5]

	amounts := []struct {
		name string
		dst  *float64
		raw  string
	}{
		{"gross", &rec.Gross, row[6]},
		{"discount", &rec.Discount, row[7]},
		{"commission", &rec.Commission, row[8]},
		{"extra_adjustment", &rec.Adjustment, row[9]},
		{"net", &rec.Net, row[10]},
	}
	for _, a := range amounts {
		v, err := strconv.ParseFloat(strings.TrimSpace(a.raw), 64)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", a.name, err)
		}
		*a.dst = v
	}

	if rec.RecordedAt, err = time.Parse(time.RFC3339, row[11]); err != nil {
		return rec, fmt.Errorf("recorded_at: %w", err)
	}
	return rec, nil
}

// formatAmount renders a float without exponent noise and without
// inventing precision.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
