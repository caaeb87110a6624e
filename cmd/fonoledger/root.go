package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "fonoledger",
	Short: "Speech-therapy visit income ledger",
	Long:  "Computes per-visit net income (líquido) from editable billing rule documents and keeps an append-only visit ledger in Supabase/Postgres.",
}

func init() {
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("SUPABASE_DB_URL"), "Postgres connection string (or set SUPABASE_DB_URL)")
	pf.StringVar(&cfg.RulesDir, "rules", defaultRulesDir(), "Directory holding prices.yaml, discounts.yaml, commissions.yaml (or set FONOLEDGER_RULES)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func defaultRulesDir() string {
	if dir := os.Getenv("FONOLEDGER_RULES"); dir != "" {
		return dir
	}
	return "rules"
}
