package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the three rule documents from dir and returns a validated
// snapshot. Any absent, unreadable, or malformed document fails with a
// *ConfigError naming the offending file; no partial snapshot is returned.
func Load(dir string) (*Tables, error) {
	var t Tables

	if err := loadDoc(dir, PricesFile, &t.Prices); err != nil {
		return nil, err
	}
	if err := loadDoc(dir, DiscountsFile, &t.Discounts); err != nil {
		return nil, err
	}
	if err := loadDoc(dir, CommissionsFile, &t.Commissions); err != nil {
		return nil, err
	}

	if err := validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// loadDoc reads one YAML document into out. Unmarshaling into the typed
// map rejects non-mapping shapes and non-numeric values up front, so
// shape errors surface at load time rather than mid-calculation.
func loadDoc(dir, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return &ConfigError{Doc: name, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &ConfigError{Doc: name, Err: err}
	}
	return nil
}

func validate(t *Tables) error {
	if t.Prices == nil {
		return &ConfigError{Doc: PricesFile, Err: fmt.Errorf("document is empty")}
	}
	for loc, items := range t.Prices {
		if items == nil {
			return &ConfigError{Doc: PricesFile, Err: fmt.Errorf("location %q has no item map", loc)}
		}
		for item, price := range items {
			if price < 0 {
				return &ConfigError{Doc: PricesFile, Err: fmt.Errorf("negative price %v for %q at %q", price, item, loc)}
			}
		}
	}
	for loc, d := range t.Discounts {
		if d < 0 {
			return &ConfigError{Doc: DiscountsFile, Err: fmt.Errorf("negative discount %v for %q", d, loc)}
		}
	}
	for method, rate := range t.Commissions {
		if rate < 0 || rate > 1 {
			return &ConfigError{Doc: CommissionsFile, Err: fmt.Errorf("rate %v for %q outside [0,1]", rate, method)}
		}
	}
	return nil
}
