package model

import "time"

// VisitExportRow mirrors the Parquet schema for ledger dumps. Dates are
// carried as strings so the files open cleanly in spreadsheet tooling.
type VisitExportRow struct {
	VisitID       string  `parquet:"visit_id"`
	VisitDate     string  `parquet:"visit_date"`
	Location      string  `parquet:"location"`
	Item          string  `parquet:"item"`
	PaymentMethod string  `parquet:"payment_method"`
	Patient       string  `parquet:"patient"`
	Gross         float64 `parquet:"gross"`
	Discount      float64 `parquet:"discount"`
	Commission    float64 `parquet:"commission"`
	Adjustment    float64 `parquet:"extra_adjustment"`
	Net           float64 `parquet:"net"`
	RecordedAt    string  `parquet:"recorded_at"`
}

// ToExportRow converts a ledger record into its Parquet representation.
func ToExportRow(r *VisitRecord) VisitExportRow {
	return VisitExportRow{
		VisitID:       r.VisitID.String(),
		VisitDate:     r.VisitDate.Format("2006-01-02"),
		Location:      r.Location,
		Item:          r.Item,
		PaymentMethod: r.PaymentMethod,
		Patient:       r.Patient,
		Gross:         r.Gross,
		Discount:      r.Discount,
		Commission:    r.Commission,
		Adjustment:    r.Adjustment,
		Net:           r.Net,
		RecordedAt:    r.RecordedAt.Format(time.RFC3339),
	}
}
