// Package report aggregates persisted visit records into the dashboard
// figures: historical net total, monthly evolution, and per-location
// distribution.
package report

import (
	"sort"

	"github.com/gyeh/fonoledger/internal/model"
)

// BuildSummary folds the full ledger into a LedgerSummary. Monthly keys
// are "2006-01" and sort chronologically; locations sort by name.
func BuildSummary(recs []model.VisitRecord) *model.LedgerSummary {
	s := &model.LedgerSummary{Visits: len(recs)}

	byMonth := make(map[string]*model.PeriodTotal)
	byLocation := make(map[string]*model.PeriodTotal)

	for i := range recs {
		rec := &recs[i]
		s.TotalNet += rec.Net

		month := rec.VisitDate.Format("2006-01")
		accumulate(byMonth, month, rec.Net)
		accumulate(byLocation, rec.Location, rec.Net)
	}

	s.ByMonth = sorted(byMonth)
	s.ByLocation = sorted(byLocation)
	return s
}

func accumulate(m map[string]*model.PeriodTotal, key string, net float64) {
	pt, ok := m[key]
	if !ok {
		pt = &model.PeriodTotal{Key: key}
		m[key] = pt
	}
	pt.Visits++
	pt.Net += net
}

func sorted(m map[string]*model.PeriodTotal) []model.PeriodTotal {
	out := make([]model.PeriodTotal, 0, len(m))
	for _, pt := range m {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
