package model

// PeriodTotal is an aggregated net amount for one grouping key
// (a "2006-01" month or a location name).
type PeriodTotal struct {
	Key    string
	Visits int
	Net    float64
}

// LedgerSummary captures the dashboard aggregates over the full ledger:
// historical net total plus monthly and per-location breakdowns.
type LedgerSummary struct {
	Visits     int
	TotalNet   float64
	ByMonth    []PeriodTotal
	ByLocation []PeriodTotal
}
