package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for a fonoledger run.
type Config struct {
	DSN       string
	RulesDir  string
	LogFormat string // "text" or "json"
}

// Validate checks that the rules directory exists and contains regular
// files where the three rule documents are expected.
func (c *Config) Validate() error {
	if c.RulesDir == "" {
		return fmt.Errorf("--rules or FONOLEDGER_RULES is required")
	}
	info, err := os.Stat(c.RulesDir)
	if err != nil {
		return fmt.Errorf("rules directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("rules path %s is not a directory", c.RulesDir)
	}
	return nil
}

// ValidateWithDSN checks both the rules directory and the DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or SUPABASE_DB_URL is required")
	}
	return nil
}

// ValidateDSNOnly checks the DSN for commands that never touch the rules
// (migrate, list, summary, export, restore).
func (c *Config) ValidateDSNOnly() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or SUPABASE_DB_URL is required")
	}
	return nil
}
