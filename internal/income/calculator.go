// Package income computes the net amount ("líquido") for a single visit:
// gross price from the rule tables, minus the location's fixed discount,
// minus the payment-method commission taken on gross.
package income

import (
	"fmt"
	"time"

	"github.com/gyeh/fonoledger/internal/rules"
)

// Breakdown is the result of one calculation. Amounts are in pesos and
// carry the rule documents' own precision; nothing is rounded here.
type Breakdown struct {
	Gross      float64
	Discount   float64
	Commission float64
	Net        float64
}

// LookupError reports a (location, item) pair with no price. Item is
// empty when the location itself is unknown.
type LookupError struct {
	Location string
	Item     string
}

func (e *LookupError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("no prices defined for location %q", e.Location)
	}
	return fmt.Sprintf("no price for item %q at %q", e.Item, e.Location)
}

// Calculate resolves the breakdown for one visit. It is pure: identical
// inputs and an identical table snapshot always produce the same output,
// and no state survives the call.
//
// Gross resolution is strict — an unknown location or item fails with a
// *LookupError rather than defaulting to zero. Discount and commission
// lookups default to zero for missing entries. Net is not floored: when
// discount plus commission exceed gross the result is negative, which is
// a legitimate outcome, not an error.
func Calculate(location, item, method string, day time.Time, t *rules.Tables) (Breakdown, error) {
	gross, err := grossPrice(location, item, t)
	if err != nil {
		return Breakdown{}, err
	}
	return breakdown(gross, location, method, day, t), nil
}

func grossPrice(location, item string, t *rules.Tables) (float64, error) {
	items, ok := t.Prices[location]
	if !ok {
		return 0, &LookupError{Location: location}
	}
	price, ok := items[item]
	if !ok {
		return 0, &LookupError{Location: location, Item: item}
	}
	return price, nil
}

func breakdown(gross float64, location, method string, day time.Time, t *rules.Tables) Breakdown {
	discount := resolveDiscount(location, day.Weekday(), t)
	commission := gross * t.CommissionRate(method)
	return Breakdown{
		Gross:      gross,
		Discount:   discount,
		Commission: commission,
		Net:        gross - discount - commission,
	}
}
