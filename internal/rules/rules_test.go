package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeRules(t *testing.T, prices, discounts, commissions string) string {
	t.Helper()
	dir := t.TempDir()
	docs := map[string]string{
		PricesFile:      prices,
		DiscountsFile:   discounts,
		CommissionsFile: commissions,
	}
	for name, body := range docs {
		if body == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const (
	validPrices = `
LIBEDUL:
  PACIENTE: 4500
  DUPLA: 7000
AMAR AUSTRAL:
  PACIENTE: 30000
  FALTO: 0
`
	validDiscounts = `
LIBEDUL: 0
CPM: 14610
`
	validCommissions = `
EFECTIVO: 0
TARJETA: 0.05
`
)

func TestLoad_Valid(t *testing.T) {
	dir := writeRules(t, validPrices, validDiscounts, validCommissions)
	tables, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tables.Prices["LIBEDUL"]["PACIENTE"]; got != 4500 {
		t.Errorf("price = %v, want 4500", got)
	}
	if tables.Locations() != 2 || tables.Items() != 4 {
		t.Errorf("locations=%d items=%d, want 2 and 4", tables.Locations(), tables.Items())
	}
	if got := tables.Discount("CPM"); got != 14610 {
		t.Errorf("discount = %v, want 14610", got)
	}
	if got := tables.CommissionRate("TARJETA"); got != 0.05 {
		t.Errorf("rate = %v, want 0.05", got)
	}
}

func TestLoad_ZeroDefaults(t *testing.T) {
	dir := writeRules(t, validPrices, validDiscounts, validCommissions)
	tables, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tables.Discount("DOMICILIO"); got != 0 {
		t.Errorf("missing discount entry = %v, want 0", got)
	}
	if got := tables.CommissionRate("CHEQUE"); got != 0 {
		t.Errorf("missing commission entry = %v, want 0", got)
	}
}

func TestLoad_MissingDocument(t *testing.T) {
	dir := writeRules(t, validPrices, "", validCommissions)
	_, err := Load(dir)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if ce.Doc != DiscountsFile {
		t.Errorf("error names %q, want %q", ce.Doc, DiscountsFile)
	}
}

func TestLoad_NonMappingPrices(t *testing.T) {
	dir := writeRules(t, "- just\n- a\n- list\n", validDiscounts, validCommissions)
	_, err := Load(dir)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if ce.Doc != PricesFile {
		t.Errorf("error names %q, want %q", ce.Doc, PricesFile)
	}
}

func TestLoad_FlatPricesRejected(t *testing.T) {
	// Prices must be a two-level mapping; a flat location→number doc is
	// a shape error, not a table with empty items.
	dir := writeRules(t, "LIBEDUL: 4500\n", validDiscounts, validCommissions)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for one-level price document")
	}
}

func TestLoad_NonNumericValue(t *testing.T) {
	dir := writeRules(t, validPrices, "CPM: mucho\n", validCommissions)
	var ce *ConfigError
	_, err := Load(dir)
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestLoad_RateOutOfRange(t *testing.T) {
	dir := writeRules(t, validPrices, validDiscounts, "TARJETA: 1.5\n")
	var ce *ConfigError
	_, err := Load(dir)
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if ce.Doc != CommissionsFile {
		t.Errorf("error names %q, want %q", ce.Doc, CommissionsFile)
	}
}

func TestLoad_LocationAsCommissionKey(t *testing.T) {
	// Some centers define their own name as a commission key; that must
	// load and resolve like any payment method.
	dir := writeRules(t, validPrices, validDiscounts, "AMAR AUSTRAL: 0.05\n")
	tables, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tables.CommissionRate("AMAR AUSTRAL"); got != 0.05 {
		t.Errorf("rate = %v, want 0.05", got)
	}
}
