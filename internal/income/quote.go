package income

import (
	"time"

	"github.com/gyeh/fonoledger/internal/rules"
)

// QuoteRequest carries the manual inputs the intake form allows on top of
// the rule-driven calculation: a gross override replacing the table price,
// and an extra adjustment subtracted from net (negative values act as a
// surcharge).
type QuoteRequest struct {
	Location      string
	Item          string
	PaymentMethod string
	Date          time.Time

	GrossOverride *float64
	Adjustment    float64
}

// Quote extends Breakdown with the manual adjustment. Net here already
// includes the adjustment; the rule-driven fields are identical to what
// Calculate would produce for the same gross.
type Quote struct {
	Breakdown
	Adjustment float64
}

// BuildQuote computes a breakdown honoring the request's manual inputs.
// With a gross override set, the price table is not consulted, so unknown
// (location, item) pairs only fail when no override is given. Commission
// is taken on the effective gross, overridden or not.
func BuildQuote(req QuoteRequest, t *rules.Tables) (Quote, error) {
	var gross float64
	if req.GrossOverride != nil {
		gross = *req.GrossOverride
	} else {
		g, err := grossPrice(req.Location, req.Item, t)
		if err != nil {
			return Quote{}, err
		}
		gross = g
	}

	bd := breakdown(gross, req.Location, req.PaymentMethod, req.Date, t)
	bd.Net -= req.Adjustment
	return Quote{Breakdown: bd, Adjustment: req.Adjustment}, nil
}
