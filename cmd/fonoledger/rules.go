package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/normalize"
	"github.com/gyeh/fonoledger/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the billing rule documents",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the rule documents without touching the database",
	RunE:  runRulesCheck,
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	fmt.Println("=== fonoledger rules check ===")
	for _, name := range []string{rules.PricesFile, rules.DiscountsFile, rules.CommissionsFile} {
		path := filepath.Join(cfg.RulesDir, name)
		sha, err := normalize.FileHash(path)
		if err != nil {
			log.Error().Err(err).Str("doc", name).Msg("rule document unreadable")
			os.Exit(exitcode.ConfigError)
		}
		stat, err := os.Stat(path)
		if err != nil {
			log.Error().Err(err).Str("doc", name).Msg("rule document unreadable")
			os.Exit(exitcode.ConfigError)
		}
		fmt.Printf("%-17s sha256=%s (%d bytes)\n", name, sha, stat.Size())
	}

	tables, err := rules.Load(cfg.RulesDir)
	if err != nil {
		log.Error().Err(err).Msg("validation failed")
		os.Exit(exitcode.ConfigError)
	}

	fmt.Println()
	fmt.Printf("Locations:          %d\n", tables.Locations())
	fmt.Printf("Price entries:      %d\n", tables.Items())
	fmt.Printf("Discount entries:   %d\n", len(tables.Discounts))
	fmt.Printf("Commission entries: %d\n", len(tables.Commissions))
	fmt.Println("Validation: OK")
	return nil
}
