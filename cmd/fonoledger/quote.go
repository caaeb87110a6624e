package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/income"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/rules"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a visit breakdown without persisting anything",
	RunE:  runQuote,
}

func init() {
	addVisitFlags(quoteCmd)
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	req, err := buildRequest(cmd)
	if err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(exitcode.UsageError)
	}

	tables, err := rules.Load(cfg.RulesDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rule documents")
		os.Exit(exitcode.ConfigError)
	}

	q, err := income.BuildQuote(req, tables)
	if err != nil {
		var le *income.LookupError
		if errors.As(err, &le) {
			log.Error().Err(err).Msg("price lookup failed")
			os.Exit(exitcode.LookupError)
		}
		log.Error().Err(err).Msg("calculation failed")
		os.Exit(exitcode.LookupError)
	}

	fmt.Println("=== fonoledger quote ===")
	printQuote(req, q)
	return nil
}
