package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Key canonicalizes a location, item, or payment-method string for table
// lookup: trims, collapses internal whitespace, and uppercases. The rule
// documents key everything in uppercase ("AMAR AUSTRAL", "TARJETA").
func Key(s string) string {
	s = strings.TrimSpace(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.ToUpper(s)
}
