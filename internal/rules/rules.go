// Package rules loads and validates the three billing rule documents:
// gross prices by location and item, fixed discounts by location, and
// commission rates by payment method.
package rules

import "fmt"

// Document file names expected inside the rules directory.
const (
	PricesFile      = "prices.yaml"
	DiscountsFile   = "discounts.yaml"
	CommissionsFile = "commissions.yaml"
)

// PriceTable maps location → item → gross price. Lookups are strict:
// a missing location or item is a calculation failure, never a zero.
type PriceTable map[string]map[string]float64

// DiscountTable maps location → fixed discount in pesos.
type DiscountTable map[string]float64

// CommissionTable maps payment method → rate as a fraction in [0,1].
// Keys are free-form strings; some centers define their own location name
// as a commission key and pass it as the payment method.
type CommissionTable map[string]float64

// Tables bundles one consistent snapshot of the three rule documents.
// A snapshot is read-only; callers reload on explicit invalidation and
// pass the fresh snapshot to the calculator as an argument.
type Tables struct {
	Prices      PriceTable
	Discounts   DiscountTable
	Commissions CommissionTable
}

// Discount returns the fixed discount for a location, zero when the
// location has no entry (no rule defined means no adjustment applied).
func (t *Tables) Discount(location string) float64 {
	return t.Discounts[location]
}

// CommissionRate returns the commission fraction for a payment method,
// zero when the method has no entry.
func (t *Tables) CommissionRate(method string) float64 {
	return t.Commissions[method]
}

// Locations returns the number of locations with at least one price.
func (t *Tables) Locations() int {
	return len(t.Prices)
}

// Items returns the total number of (location, item) price entries.
func (t *Tables) Items() int {
	n := 0
	for _, items := range t.Prices {
		n += len(items)
	}
	return n
}

// ConfigError reports a missing or malformed rule document.
type ConfigError struct {
	Doc string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rules %s: %s", e.Doc, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
