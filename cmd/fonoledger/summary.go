package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/ledger"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/normalize"
	"github.com/gyeh/fonoledger/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print historical, monthly, and per-location net totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateDSNOnly(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	recs, err := ledger.New(pool).LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ledger read failed")
		os.Exit(exitcode.StorageError)
	}

	s := report.BuildSummary(recs)

	fmt.Println("=== fonoledger summary ===")
	fmt.Printf("Visits:    %d\n", s.Visits)
	fmt.Printf("Total net: %s\n", normalize.FormatPesos(s.TotalNet))

	if len(s.ByMonth) > 0 {
		fmt.Println("\nBy month:")
		for _, pt := range s.ByMonth {
			fmt.Printf("  %-8s %4d visits  %14s\n", pt.Key, pt.Visits, normalize.FormatPesos(pt.Net))
		}
	}
	if len(s.ByLocation) > 0 {
		fmt.Println("\nBy location:")
		for _, pt := range s.ByLocation {
			fmt.Printf("  %-14s %4d visits  %14s\n", pt.Key, pt.Visits, normalize.FormatPesos(pt.Net))
		}
	}
	return nil
}
