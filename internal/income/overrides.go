package income

import (
	"time"

	"github.com/gyeh/fonoledger/internal/rules"
)

// discountOverride replaces the table-driven fixed discount for one
// location on one weekday. It fully replaces the table value, never adds
// to it.
type discountOverride struct {
	Location string
	Weekday  time.Weekday
	Amount   float64
}

// discountOverrides is evaluated in order; the first match wins. AMAR
// AUSTRAL charges a reduced fixed fee on its Tuesday and Friday slots.
var discountOverrides = []discountOverride{
	{Location: "AMAR AUSTRAL", Weekday: time.Tuesday, Amount: 8000},
	{Location: "AMAR AUSTRAL", Weekday: time.Friday, Amount: 6500},
}

// resolveDiscount applies the override rules ahead of the discount table.
// Locations and weekdays not named by an override fall through to the
// table value, which defaults to zero.
func resolveDiscount(location string, weekday time.Weekday, t *rules.Tables) float64 {
	for _, o := range discountOverrides {
		if o.Location == location && o.Weekday == weekday {
			return o.Amount
		}
	}
	return t.Discount(location)
}
